package domains

import (
	"time"

	"github.com/google/uuid"
)

type SampleReview struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SampleID  uuid.UUID `db:"sample_id" json:"sample_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Rating    float64   `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	Image     string    `db:"image" json:"image"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ReviewStatus string

const (
	ReviewNone      ReviewStatus = "none"
	ReviewPending   ReviewStatus = "pending"
	ReviewCompleted ReviewStatus = "completed"
)

// IsReviewPending reports whether a review row is still the empty placeholder
// created when the sample was claimed. A rating of exactly 0 counts as
// "not rated", so a legitimately zero-rated review with no comment and no
// image is classified as pending.
func IsReviewPending(review SampleReview) bool {
	return review.Rating == 0 && review.Comment == "" && review.Image == ""
}

func StatusOf(review *SampleReview) ReviewStatus {
	switch {
	case review == nil:
		return ReviewNone
	case IsReviewPending(*review):
		return ReviewPending
	default:
		return ReviewCompleted
	}
}
