package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"samplehub/internal/domains"
)

// CountSurveyCompleted counts users who answered every question of the sample at least once.
func CountSurveyCompleted(answeredByUser map[uuid.UUID]int, totalQuestions int) int {
	if totalQuestions <= 0 {
		return 0
	}
	completed := 0
	for _, answered := range answeredByUser {
		if answered >= totalQuestions {
			completed++
		}
	}
	return completed
}

// Engagement computes the three rate metrics of a sample. Drafts have no
// participants yet and always report zeros without touching storage.
//
// The counters are independent: a review or a full survey is not required
// to have a matching SampleUser row.
func (a *Aggregator) Engagement(ctx context.Context, sample domains.Sample, totalQuestions int) (domains.Engagement, error) {
	if sample.IsDraft {
		return domains.Engagement{}, nil
	}

	sent, err := a.store.CountSampleUsers(ctx, sample.ID)
	if err != nil {
		return domains.Engagement{}, fmt.Errorf("count sample users: %w", err)
	}
	reviewed, err := a.store.CountFilledReviews(ctx, sample.ID)
	if err != nil {
		return domains.Engagement{}, fmt.Errorf("count filled reviews: %w", err)
	}
	answered, err := a.store.CountAnsweredQuestionsByUser(ctx, sample.ID)
	if err != nil {
		return domains.Engagement{}, fmt.Errorf("count answered questions: %w", err)
	}

	return domains.Engagement{
		SampleSent:      NewRateMetric(sent, sample.MaximumSample),
		SampleCompleted: NewRateMetric(reviewed, sample.MaximumSample),
		SurveyCompleted: NewRateMetric(CountSurveyCompleted(answered, totalQuestions), sample.MaximumSample),
	}, nil
}
