package domains

import "github.com/google/uuid"

type DurationWindow struct {
	TotalDurationDays int `json:"total_duration_days"`
	DaysSinceStart    int `json:"days_since_start"`
}

type OptionAverage struct {
	OptionID   uuid.UUID `json:"option_id"`
	Label      string    `json:"label"`
	Count      int       `json:"count"`
	Percentage float64   `json:"percentage"`
}

// RateMetric is a count together with its share of the sample's participant cap.
type RateMetric struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type QuestionStat struct {
	QuestionID    uuid.UUID       `json:"question_id"`
	Prompt        string          `json:"question"`
	AnswerType    AnswerType      `json:"answer_type"`
	Options       []OptionAverage `json:"option_data"`
	TotalAnswered int             `json:"total_answered"`
	Duration      DurationWindow  `json:"duration"`
}

type Engagement struct {
	SampleSent      RateMetric `json:"sample_sent"`
	SampleCompleted RateMetric `json:"sample_completed"`
	SurveyCompleted RateMetric `json:"survey_completed"`
}

// SampleDetail is the admin view of a single sample.
type SampleDetail struct {
	Sample     Sample         `json:"sample"`
	Questions  []QuestionStat `json:"questions"`
	Engagement Engagement     `json:"engagement"`
	Duration   DurationWindow `json:"duration"`
	ReceivedOn string         `json:"received_on,omitempty"`
}

type SampleSummary struct {
	Sample      Sample     `json:"sample"`
	ProductName string     `json:"product_name"`
	Image       string     `json:"image"`
	Engagement  Engagement `json:"engagement"`
}

type SampleList struct {
	Items []SampleSummary `json:"items"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

type UserQuestion struct {
	QuestionID uuid.UUID  `json:"question_id"`
	Prompt     string     `json:"question"`
	AnswerType AnswerType `json:"answer_type"`
	Options    []Option   `json:"options"`
}

// UserSampleView is what an end user sees for a sample they can access.
type UserSampleView struct {
	SampleID     uuid.UUID      `json:"sample_id"`
	Name         string         `json:"name"`
	Questions    []UserQuestion `json:"questions"`
	ReceivedOn   string         `json:"received_on,omitempty"`
	ReviewStatus ReviewStatus   `json:"review_status"`
}
