package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"samplehub/internal/domains"
	"samplehub/internal/storage"
)

const sampleColumns = `
	s.id, s.product_id, s.name, s.start_date, s.end_date,
	s.maximum_sample, s.is_draft, s.is_completed, s.is_active, s.created_at`

const sampleWithProductColumns = sampleColumns + `,
	p.name AS product_name, p.image AS product_image`

type SampleProvider struct {
	db *pgxpool.Pool
}

func NewSampleProvider(db *pgxpool.Pool) *SampleProvider {
	return &SampleProvider{
		db: db,
	}
}

func (s SampleProvider) GetSampleByID(ctx context.Context, id uuid.UUID, filter domains.SampleFilter) (domains.Sample, error) {
	where := []string{"s.id = $1"}
	args := []interface{}{id}

	if filter.PublishedOnly {
		where = append(where, "NOT s.is_draft", "s.is_active")
	}
	if filter.ActiveAt != nil {
		args = append(args, *filter.ActiveAt)
		where = append(where, fmt.Sprintf("s.start_date <= $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM samples s WHERE %s`, sampleColumns, strings.Join(where, " AND "))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return domains.Sample{}, fmt.Errorf("get sample: %w", err)
	}
	defer rows.Close()

	sample, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Sample])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Sample{}, fmt.Errorf("get sample: %w", storage.ErrNotFound)
		}
		return domains.Sample{}, fmt.Errorf("get sample: %w", err)
	}
	return sample, nil
}

func (s SampleProvider) ListSamples(ctx context.Context, page domains.Page) ([]domains.SampleWithProduct, int, error) {
	var total int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM samples`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count samples: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM samples s
		JOIN products p ON p.id = s.product_id
		ORDER BY s.created_at DESC, s.id
		LIMIT $1 OFFSET $2`, sampleWithProductColumns)

	rows, err := s.db.Query(ctx, query, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list samples: %w", err)
	}
	defer rows.Close()

	samples, err := pgx.CollectRows(rows, pgx.RowToStructByName[domains.SampleWithProduct])
	if err != nil {
		return nil, 0, fmt.Errorf("list samples: %w", err)
	}
	return samples, total, nil
}

// ListSamplesForReport returns the requested samples, or every published sample when ids is empty.
func (s SampleProvider) ListSamplesForReport(ctx context.Context, ids []uuid.UUID) ([]domains.SampleWithProduct, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if len(ids) == 0 {
		rows, err = s.db.Query(ctx, fmt.Sprintf(`
			SELECT %s
			FROM samples s
			JOIN products p ON p.id = s.product_id
			WHERE NOT s.is_draft
			ORDER BY s.start_date, s.name`, sampleWithProductColumns))
	} else {
		rows, err = s.db.Query(ctx, fmt.Sprintf(`
			SELECT %s
			FROM samples s
			JOIN products p ON p.id = s.product_id
			WHERE s.id = ANY($1)
			ORDER BY s.start_date, s.name`, sampleWithProductColumns), ids)
	}
	if err != nil {
		return nil, fmt.Errorf("list report samples: %w", err)
	}
	defer rows.Close()

	samples, err := pgx.CollectRows(rows, pgx.RowToStructByName[domains.SampleWithProduct])
	if err != nil {
		return nil, fmt.Errorf("list report samples: %w", err)
	}
	return samples, nil
}

func (s SampleProvider) ListQuestionsWithOptions(ctx context.Context, sampleID uuid.UUID) ([]domains.Question, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, sample_id, question, answer_type
		FROM questions
		WHERE sample_id = $1
		ORDER BY position, id`, sampleID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	questions, err := pgx.CollectRows(rows, pgx.RowToStructByName[domains.Question])
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	if len(questions) == 0 {
		return questions, nil
	}

	ids := make([]uuid.UUID, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}

	optionRows, err := s.db.Query(ctx, `
		SELECT id, question_id, option
		FROM options
		WHERE question_id = ANY($1)
		ORDER BY position, id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list options: %w", err)
	}
	options, err := pgx.CollectRows(optionRows, pgx.RowToStructByName[domains.Option])
	if err != nil {
		return nil, fmt.Errorf("list options: %w", err)
	}

	byQuestion := make(map[uuid.UUID][]domains.Option, len(questions))
	for _, option := range options {
		byQuestion[option.QuestionID] = append(byQuestion[option.QuestionID], option)
	}
	for i := range questions {
		questions[i].Options = byQuestion[questions[i].ID]
	}
	return questions, nil
}

// CountResponsesByOption groups a question's responses by option. Free-text
// responses have no option and are reported under uuid.Nil.
func (s SampleProvider) CountResponsesByOption(ctx context.Context, questionID uuid.UUID) (map[uuid.UUID]int, error) {
	rows, err := s.db.Query(ctx, `
		SELECT option_id, COUNT(*)
		FROM responses
		WHERE question_id = $1
		GROUP BY option_id`, questionID)
	if err != nil {
		return nil, fmt.Errorf("count responses by option: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			optionID *uuid.UUID
			count    int
		)
		if err := rows.Scan(&optionID, &count); err != nil {
			return nil, fmt.Errorf("scan response count: %w", err)
		}
		key := uuid.Nil
		if optionID != nil {
			key = *optionID
		}
		counts[key] += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate response counts: %w", err)
	}
	return counts, nil
}

func (s SampleProvider) CountAnsweredQuestionsByUser(ctx context.Context, sampleID uuid.UUID) (map[uuid.UUID]int, error) {
	rows, err := s.db.Query(ctx, `
		SELECT user_id, COUNT(DISTINCT question_id)
		FROM responses
		WHERE sample_id = $1
		GROUP BY user_id`, sampleID)
	if err != nil {
		return nil, fmt.Errorf("count answered questions: %w", err)
	}
	defer rows.Close()

	answered := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			userID uuid.UUID
			count  int
		)
		if err := rows.Scan(&userID, &count); err != nil {
			return nil, fmt.Errorf("scan answered questions: %w", err)
		}
		answered[userID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answered questions: %w", err)
	}
	return answered, nil
}

func (s SampleProvider) CountSampleUsers(ctx context.Context, sampleID uuid.UUID) (int, error) {
	var count int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM sample_users WHERE sample_id = $1`, sampleID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sample users: %w", err)
	}
	return count, nil
}

// CountFilledReviews mirrors domains.IsReviewPending in SQL.
func (s SampleProvider) CountFilledReviews(ctx context.Context, sampleID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM sample_reviews
		WHERE sample_id = $1
		  AND NOT (rating = 0 AND comment = '' AND image = '')`

	var count int
	if err := s.db.QueryRow(ctx, query, sampleID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count filled reviews: %w", err)
	}
	return count, nil
}

func (s SampleProvider) GetSampleReview(ctx context.Context, sampleID, userID uuid.UUID) (domains.SampleReview, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, sample_id, user_id, rating, comment, image, created_at
		FROM sample_reviews
		WHERE sample_id = $1 AND user_id = $2`, sampleID, userID)
	if err != nil {
		return domains.SampleReview{}, fmt.Errorf("get sample review: %w", err)
	}
	defer rows.Close()

	review, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.SampleReview])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.SampleReview{}, fmt.Errorf("get sample review: %w", storage.ErrNotFound)
		}
		return domains.SampleReview{}, fmt.Errorf("get sample review: %w", err)
	}
	return review, nil
}

// MarkCompletedSamples flags published samples whose claims reached the cap.
func (s SampleProvider) MarkCompletedSamples(ctx context.Context) (int64, error) {
	const query = `
		UPDATE samples s
		SET is_completed = true,
		    updated_at = now()
		WHERE NOT s.is_draft
		  AND NOT s.is_completed
		  AND s.maximum_sample > 0
		  AND (SELECT COUNT(*) FROM sample_users su WHERE su.sample_id = s.id) >= s.maximum_sample`

	tag, err := s.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("mark completed samples: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s SampleProvider) DeactivateExpiredSamples(ctx context.Context, now time.Time) (int64, error) {
	const query = `
		UPDATE samples
		SET is_active = false,
		    updated_at = now()
		WHERE is_active
		  AND end_date IS NOT NULL
		  AND end_date < $1`

	tag, err := s.db.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired samples: %w", err)
	}
	return tag.RowsAffected(), nil
}
