package stats

import (
	"context"
	"time"

	"github.com/google/uuid"

	"samplehub/internal/domains"
)

// Store is the read side the aggregator needs from persistence.
type Store interface {
	ListQuestionsWithOptions(ctx context.Context, sampleID uuid.UUID) ([]domains.Question, error)
	CountResponsesByOption(ctx context.Context, questionID uuid.UUID) (map[uuid.UUID]int, error)
	CountAnsweredQuestionsByUser(ctx context.Context, sampleID uuid.UUID) (map[uuid.UUID]int, error)
	CountSampleUsers(ctx context.Context, sampleID uuid.UUID) (int, error)
	CountFilledReviews(ctx context.Context, sampleID uuid.UUID) (int, error)
}

type Clock func() time.Time

const defaultWorkers = 4

type Aggregator struct {
	store   Store
	now     Clock
	loc     *time.Location
	workers int
}

type Option func(*Aggregator)

func WithClock(clock Clock) Option {
	return func(a *Aggregator) {
		if clock != nil {
			a.now = clock
		}
	}
}

func WithLocation(loc *time.Location) Option {
	return func(a *Aggregator) {
		if loc != nil {
			a.loc = loc
		}
	}
}

// WithWorkers bounds how many question tallies run at once. 1 means sequential.
func WithWorkers(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.workers = n
		}
	}
}

func New(store Store, opts ...Option) *Aggregator {
	a := &Aggregator{
		store:   store,
		now:     time.Now,
		loc:     time.Local,
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Aggregator) Window(sample domains.Sample) domains.DurationWindow {
	return ComputeDurationWindow(sample.StartDate, sample.EndDate, a.now(), a.loc)
}
