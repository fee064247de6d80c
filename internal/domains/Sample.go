package domains

import (
	"time"

	"github.com/google/uuid"
)

type Sample struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	ProductID     uuid.UUID  `db:"product_id" json:"product_id"`
	Name          string     `db:"name" json:"name"`
	StartDate     *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate       *time.Time `db:"end_date" json:"end_date,omitempty"`
	MaximumSample int        `db:"maximum_sample" json:"maximum_sample"`
	IsDraft       bool       `db:"is_draft" json:"is_draft"`
	IsCompleted   bool       `db:"is_completed" json:"is_completed"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// SampleWithProduct is a sample row joined with the product it samples.
type SampleWithProduct struct {
	Sample
	ProductName  string `db:"product_name" json:"product_name"`
	ProductImage string `db:"product_image" json:"image"`
}

type SampleFilter struct {
	PublishedOnly bool
	ActiveAt      *time.Time
}

type Page struct {
	Page  int `json:"page" validate:"gte=1"`
	Limit int `json:"limit" validate:"gte=1,lte=100"`
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}
