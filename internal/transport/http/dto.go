package httptransport

import "github.com/google/uuid"

type ReportEmailRequest struct {
	Email     string      `json:"email" validate:"required,email"`
	SampleIDs []uuid.UUID `json:"sample_ids"`
	View      string      `json:"view" validate:"omitempty,oneof=sample question"`
}

type ReportEmailResponse struct {
	ReportID uuid.UUID `json:"report_id"`
	Status   string    `json:"status"`
}
