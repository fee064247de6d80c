package stats

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"samplehub/internal/domains"
)

var (
	SampleReportHeader = []string{
		"Sample", "Product", "Start", "End",
		"Samples Sent", "Samples Reviewed", "Surveys Completed", "Days",
	}
	QuestionReportHeader = []string{
		"Sample", "Question", "Answer Type", "Option",
		"Responses", "Percentage", "Total Answered", "Days",
	}
)

type SampleReportRow struct {
	Sample           string
	Product          string
	Start            string
	End              string
	SamplesSent      string
	SamplesReviewed  string
	SurveysCompleted string
	Days             string
}

func (r SampleReportRow) Cells() []string {
	return []string{r.Sample, r.Product, r.Start, r.End, r.SamplesSent, r.SamplesReviewed, r.SurveysCompleted, r.Days}
}

type QuestionReportRow struct {
	Sample        string
	Question      string
	AnswerType    string
	Option        string
	Responses     int
	Percentage    float64
	TotalAnswered int
	Days          string
}

func (r QuestionReportRow) Cells() []string {
	return []string{
		r.Sample,
		r.Question,
		r.AnswerType,
		r.Option,
		strconv.Itoa(r.Responses),
		strconv.FormatFloat(r.Percentage, 'f', 2, 64),
		strconv.Itoa(r.TotalAnswered),
		r.Days,
	}
}

// Ratio renders the "{count} / {total}" cells used throughout exported reports.
func Ratio(count, total int) string {
	return fmt.Sprintf("%d / %d", count, total)
}

func DaysRatio(window domains.DurationWindow) string {
	return Ratio(window.DaysSinceStart, window.TotalDurationDays)
}

func (a *Aggregator) SampleReportRow(ctx context.Context, sample domains.SampleWithProduct) (SampleReportRow, error) {
	summary, err := a.SampleSummary(ctx, sample)
	if err != nil {
		return SampleReportRow{}, err
	}

	maximum := sample.MaximumSample
	return SampleReportRow{
		Sample:           sample.Name,
		Product:          sample.ProductName,
		Start:            a.formatDate(sample.StartDate),
		End:              a.formatDate(sample.EndDate),
		SamplesSent:      Ratio(summary.Engagement.SampleSent.Count, maximum),
		SamplesReviewed:  Ratio(summary.Engagement.SampleCompleted.Count, maximum),
		SurveysCompleted: Ratio(summary.Engagement.SurveyCompleted.Count, maximum),
		Days:             DaysRatio(a.Window(sample.Sample)),
	}, nil
}

// QuestionReportRows flattens the per-question statistics: one row per option,
// or a single row for free-text questions.
func (a *Aggregator) QuestionReportRows(ctx context.Context, sample domains.SampleWithProduct) ([]QuestionReportRow, error) {
	questions, err := a.store.ListQuestionsWithOptions(ctx, sample.ID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	window := a.Window(sample.Sample)
	questionStats, err := a.QuestionStats(ctx, questions, window)
	if err != nil {
		return nil, err
	}

	days := DaysRatio(window)
	rows := make([]QuestionReportRow, 0, len(questionStats))
	for _, stat := range questionStats {
		base := QuestionReportRow{
			Sample:        sample.Name,
			Question:      stat.Prompt,
			AnswerType:    string(stat.AnswerType),
			TotalAnswered: stat.TotalAnswered,
			Days:          days,
		}
		if len(stat.Options) == 0 {
			base.Responses = stat.TotalAnswered
			rows = append(rows, base)
			continue
		}
		for _, option := range stat.Options {
			row := base
			row.Option = option.Label
			row.Responses = option.Count
			row.Percentage = option.Percentage
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (a *Aggregator) formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(a.loc).Format(time.DateOnly)
}
