package httptransport

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"samplehub/internal/domains"
	"samplehub/internal/httpx"
	"samplehub/internal/report"
	"samplehub/internal/service"
)

type ReportHandlers struct {
	service ReportServices
}

type ReportServices interface {
	BuildReport(ctx context.Context, viewer domains.Viewer, request service.ReportRequest) (service.Report, error)
	EmailReport(ctx context.Context, viewer domains.Viewer, request service.ReportRequest, to string) (uuid.UUID, error)
}

func NewReportHandlers(service ReportServices) *ReportHandlers {
	return &ReportHandlers{service: service}
}

func (h *ReportHandlers) DownloadReport(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httpx.ViewerFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query := r.URL.Query()
	format, err := report.ParseFormat(query.Get("format"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	view, err := service.ParseReportView(query.Get("view"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	ids, err := parseIDs(query.Get("ids"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	built, err := h.service.BuildReport(r.Context(), viewer, service.ReportRequest{SampleIDs: ids, View: view, Format: format})
	if err != nil {
		writeServiceError(w, "BuildReport", err)
		return
	}

	w.Header().Set("Content-Type", built.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", built.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(built.Body)))
	w.Header().Set("X-Report-Id", built.ID.String())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(built.Body)
}

func (h *ReportHandlers) EmailReport(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httpx.ViewerFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	request, err := httpx.ReadBody[ReportEmailRequest](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := httpx.Validate(request); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	view, err := service.ParseReportView(request.View)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.service.EmailReport(r.Context(), viewer, service.ReportRequest{SampleIDs: request.SampleIDs, View: view}, request.Email)
	if err != nil {
		writeServiceError(w, "EmailReport", err)
		return
	}

	httpx.JSON(w, http.StatusAccepted, ReportEmailResponse{ReportID: id, Status: "sent"})
}

// parseIDs reads a comma separated list of sample ids. Empty means all samples.
func parseIDs(raw string) ([]uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid sample id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
