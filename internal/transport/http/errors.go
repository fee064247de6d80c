package httptransport

import (
	"errors"
	"log/slog"
	"net/http"

	"samplehub/internal/httpx"
	"samplehub/internal/report"
	"samplehub/internal/service"
)

// writeServiceError maps service sentinels onto status codes; anything else is a 500.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrSampleNotFound):
		httpx.Error(w, http.StatusNotFound, "sample not found")
	case errors.Is(err, service.ErrForbidden):
		httpx.Error(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, service.ErrReportEmpty):
		httpx.Error(w, http.StatusNotFound, "no samples to report")
	case errors.Is(err, service.ErrUnknownReportView), errors.Is(err, report.ErrUnknownFormat):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error(op+" failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "internal error")
	}
}
