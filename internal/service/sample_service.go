package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"samplehub/internal/domains"
	"samplehub/internal/stats"
	"samplehub/internal/storage"
)

type SampleService struct {
	provider   SampleProvider
	users      UserProvider
	aggregator *stats.Aggregator
	now        stats.Clock
}

type SampleProvider interface {
	stats.Store
	GetSampleByID(ctx context.Context, id uuid.UUID, filter domains.SampleFilter) (domains.Sample, error)
	ListSamples(ctx context.Context, page domains.Page) ([]domains.SampleWithProduct, int, error)
	GetSampleReview(ctx context.Context, sampleID, userID uuid.UUID) (domains.SampleReview, error)
}

type UserProvider interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (domains.User, error)
}

func NewSampleService(provider SampleProvider, users UserProvider, aggregator *stats.Aggregator, clock stats.Clock) *SampleService {
	if clock == nil {
		clock = time.Now
	}
	return &SampleService{
		provider:   provider,
		users:      users,
		aggregator: aggregator,
		now:        clock,
	}
}

func (h *SampleService) GetSampleDetail(ctx context.Context, viewer domains.Viewer, sampleID uuid.UUID) (domains.SampleDetail, error) {
	if !viewer.IsAdmin() {
		return domains.SampleDetail{}, ErrForbidden
	}

	sample, err := h.provider.GetSampleByID(ctx, sampleID, domains.SampleFilter{})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domains.SampleDetail{}, ErrSampleNotFound
		}
		slog.Error("GetSampleByID failed", "err", err, "sample_id", sampleID)
		return domains.SampleDetail{}, err
	}

	detail, err := h.aggregator.SampleDetail(ctx, sample)
	if err != nil {
		slog.Error("SampleDetail failed", "err", err, "sample_id", sampleID)
		return domains.SampleDetail{}, err
	}
	return detail, nil
}

func (h *SampleService) ListSamples(ctx context.Context, viewer domains.Viewer, page domains.Page) (domains.SampleList, error) {
	if !viewer.IsAdmin() {
		return domains.SampleList{}, ErrForbidden
	}

	samples, total, err := h.provider.ListSamples(ctx, page)
	if err != nil {
		slog.Error("ListSamples failed", "err", err, "page", page.Page, "limit", page.Limit)
		return domains.SampleList{}, err
	}

	items := make([]domains.SampleSummary, 0, len(samples))
	for _, sample := range samples {
		summary, err := h.aggregator.SampleSummary(ctx, sample)
		if err != nil {
			slog.Error("SampleSummary failed", "err", err, "sample_id", sample.ID)
			return domains.SampleList{}, err
		}
		items = append(items, summary)
	}

	return domains.SampleList{
		Items: items,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

// GetUserSample returns the end-user projection of a published sample that has already started.
func (h *SampleService) GetUserSample(ctx context.Context, viewer domains.Viewer, sampleID uuid.UUID) (domains.UserSampleView, error) {
	now := h.now()
	sample, err := h.provider.GetSampleByID(ctx, sampleID, domains.SampleFilter{PublishedOnly: true, ActiveAt: &now})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domains.UserSampleView{}, ErrSampleNotFound
		}
		slog.Error("GetSampleByID failed", "err", err, "sample_id", sampleID)
		return domains.UserSampleView{}, err
	}

	user, err := h.users.GetUserByID(ctx, viewer.UserID)
	if err != nil {
		slog.Error("GetUserByID failed", "err", err, "user_id", viewer.UserID)
		return domains.UserSampleView{}, fmt.Errorf("load viewer: %w", err)
	}

	var review *domains.SampleReview
	found, err := h.provider.GetSampleReview(ctx, sampleID, viewer.UserID)
	switch {
	case err == nil:
		review = &found
	case errors.Is(err, storage.ErrNotFound):
	default:
		slog.Error("GetSampleReview failed", "err", err, "sample_id", sampleID, "user_id", viewer.UserID)
		return domains.UserSampleView{}, err
	}

	view, err := h.aggregator.UserView(ctx, sample, user, review)
	if err != nil {
		slog.Error("UserView failed", "err", err, "sample_id", sampleID, "user_id", viewer.UserID)
		return domains.UserSampleView{}, err
	}
	return view, nil
}
