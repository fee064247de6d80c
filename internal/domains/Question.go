package domains

import "github.com/google/uuid"

type AnswerType string

const (
	AnswerText   AnswerType = "TEXT"
	AnswerSingle AnswerType = "SINGLE"
	AnswerMulti  AnswerType = "MULTI"
)

type Question struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	SampleID   uuid.UUID  `db:"sample_id" json:"sample_id"`
	Prompt     string     `db:"question" json:"question"`
	AnswerType AnswerType `db:"answer_type" json:"answer_type"`
	Options    []Option   `db:"-" json:"options"`
}

type Option struct {
	ID         uuid.UUID `db:"id" json:"id"`
	QuestionID uuid.UUID `db:"question_id" json:"question_id"`
	Label      string    `db:"option" json:"option"`
}
