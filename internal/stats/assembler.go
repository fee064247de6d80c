package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"samplehub/internal/domains"
)

const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// QuestionStats tallies every question of the sample. Tallies are independent
// reads, so they run concurrently up to the worker limit; the result keeps
// question order regardless of completion order.
func (a *Aggregator) QuestionStats(ctx context.Context, questions []domains.Question, window domains.DurationWindow) ([]domains.QuestionStat, error) {
	result := make([]domains.QuestionStat, len(questions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, question := range questions {
		i, question := i, question
		g.Go(func() error {
			counts, err := a.store.CountResponsesByOption(gctx, question.ID)
			if err != nil {
				return fmt.Errorf("count responses for question %s: %w", question.ID, err)
			}

			tally := ComputeOptionAverages(question.Options, counts)
			total := tally.TotalAnswered
			if question.AnswerType == domains.AnswerText {
				total = textAnswers(counts)
			}

			result[i] = domains.QuestionStat{
				QuestionID:    question.ID,
				Prompt:        question.Prompt,
				AnswerType:    question.AnswerType,
				Options:       tally.Averages,
				TotalAnswered: total,
				Duration:      window,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// SampleDetail builds the admin view of one sample.
func (a *Aggregator) SampleDetail(ctx context.Context, sample domains.Sample) (domains.SampleDetail, error) {
	questions, err := a.store.ListQuestionsWithOptions(ctx, sample.ID)
	if err != nil {
		return domains.SampleDetail{}, fmt.Errorf("list questions: %w", err)
	}

	window := a.Window(sample)
	questionStats, err := a.QuestionStats(ctx, questions, window)
	if err != nil {
		return domains.SampleDetail{}, err
	}

	engagement, err := a.Engagement(ctx, sample, len(questions))
	if err != nil {
		return domains.SampleDetail{}, err
	}

	detail := domains.SampleDetail{
		Sample:     sample,
		Questions:  questionStats,
		Engagement: engagement,
		Duration:   window,
	}
	if sample.StartDate != nil {
		detail.ReceivedOn = formatISO(*sample.StartDate)
	}
	return detail, nil
}

// SampleSummary builds a list row: engagement only, no per-question breakdown.
func (a *Aggregator) SampleSummary(ctx context.Context, sample domains.SampleWithProduct) (domains.SampleSummary, error) {
	totalQuestions := 0
	if !sample.IsDraft {
		questions, err := a.store.ListQuestionsWithOptions(ctx, sample.ID)
		if err != nil {
			return domains.SampleSummary{}, fmt.Errorf("list questions: %w", err)
		}
		totalQuestions = len(questions)
	}

	engagement, err := a.Engagement(ctx, sample.Sample, totalQuestions)
	if err != nil {
		return domains.SampleSummary{}, err
	}

	return domains.SampleSummary{
		Sample:      sample.Sample,
		ProductName: sample.ProductName,
		Image:       sample.ProductImage,
		Engagement:  engagement,
	}, nil
}

// UserView is the reduced projection for an end user: questions and options
// without any counts.
func (a *Aggregator) UserView(ctx context.Context, sample domains.Sample, user domains.User, review *domains.SampleReview) (domains.UserSampleView, error) {
	questions, err := a.store.ListQuestionsWithOptions(ctx, sample.ID)
	if err != nil {
		return domains.UserSampleView{}, fmt.Errorf("list questions: %w", err)
	}

	projected := make([]domains.UserQuestion, 0, len(questions))
	for _, question := range questions {
		options := question.Options
		if options == nil {
			options = []domains.Option{}
		}
		projected = append(projected, domains.UserQuestion{
			QuestionID: question.ID,
			Prompt:     question.Prompt,
			AnswerType: question.AnswerType,
			Options:    options,
		})
	}

	view := domains.UserSampleView{
		SampleID:     sample.ID,
		Name:         sample.Name,
		Questions:    projected,
		ReviewStatus: domains.StatusOf(review),
	}
	if receivedOn, ok := ReceivedOn(sample, user); ok {
		view.ReceivedOn = formatISO(receivedOn)
	}
	return view, nil
}

// ReceivedOn is the later of the sample start and the user's join date.
func ReceivedOn(sample domains.Sample, user domains.User) (time.Time, bool) {
	if sample.StartDate == nil {
		return time.Time{}, false
	}
	if user.CreatedAt.After(*sample.StartDate) {
		return user.CreatedAt, true
	}
	return *sample.StartDate, true
}

func formatISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// textAnswers counts free-text responses, which carry no option id.
func textAnswers(counts map[uuid.UUID]int) int {
	return max(0, counts[uuid.Nil])
}
