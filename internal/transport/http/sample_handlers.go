package httptransport

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"samplehub/internal/domains"
	"samplehub/internal/httpx"
)

type SampleHandlers struct {
	service SampleServices
}

type SampleServices interface {
	GetSampleDetail(ctx context.Context, viewer domains.Viewer, sampleID uuid.UUID) (domains.SampleDetail, error)
	ListSamples(ctx context.Context, viewer domains.Viewer, page domains.Page) (domains.SampleList, error)
	GetUserSample(ctx context.Context, viewer domains.Viewer, sampleID uuid.UUID) (domains.UserSampleView, error)
}

func NewSampleHandlers(service SampleServices) *SampleHandlers {
	return &SampleHandlers{service: service}
}

func (h *SampleHandlers) ListSamples(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httpx.ViewerFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var page domains.Page
	var err error
	if page.Page, err = httpx.QueryInt(r, "page", 1); err != nil {
		httpx.Error(w, http.StatusBadRequest, "page must be an integer")
		return
	}
	if page.Limit, err = httpx.QueryInt(r, "limit", 20); err != nil {
		httpx.Error(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	if err := httpx.Validate(page); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.service.ListSamples(r.Context(), viewer, page)
	if err != nil {
		writeServiceError(w, "ListSamples", err)
		return
	}

	httpx.JSON(w, http.StatusOK, list)
}

func (h *SampleHandlers) GetSampleDetail(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httpx.ViewerFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	sampleID, ok := httpx.GetID(w, r)
	if !ok {
		return
	}

	detail, err := h.service.GetSampleDetail(r.Context(), viewer, sampleID)
	if err != nil {
		writeServiceError(w, "GetSampleDetail", err)
		return
	}

	httpx.JSON(w, http.StatusOK, detail)
}

func (h *SampleHandlers) GetUserSample(w http.ResponseWriter, r *http.Request) {
	viewer, ok := httpx.ViewerFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	sampleID, ok := httpx.GetID(w, r)
	if !ok {
		return
	}

	view, err := h.service.GetUserSample(r.Context(), viewer, sampleID)
	if err != nil {
		writeServiceError(w, "GetUserSample", err)
		return
	}

	httpx.JSON(w, http.StatusOK, view)
}
