package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"samplehub/internal/domains"
	"samplehub/internal/mail"
	"samplehub/internal/report"
	"samplehub/internal/stats"
)

type ReportView string

const (
	ReportBySample   ReportView = "sample"
	ReportByQuestion ReportView = "question"
)

func ParseReportView(s string) (ReportView, error) {
	switch ReportView(s) {
	case "", ReportBySample:
		return ReportBySample, nil
	case ReportByQuestion:
		return ReportByQuestion, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownReportView, s)
	}
}

type ReportRequest struct {
	SampleIDs []uuid.UUID
	View      ReportView
	Format    report.Format
}

type Report struct {
	ID          uuid.UUID
	Filename    string
	ContentType string
	Body        []byte
}

type ReportProvider interface {
	ListSamplesForReport(ctx context.Context, ids []uuid.UUID) ([]domains.SampleWithProduct, error)
}

type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

type ReportService struct {
	provider   ReportProvider
	aggregator *stats.Aggregator
	mailer     Mailer
	now        stats.Clock
}

func NewReportService(provider ReportProvider, aggregator *stats.Aggregator, mailer Mailer, clock stats.Clock) *ReportService {
	if clock == nil {
		clock = time.Now
	}
	return &ReportService{
		provider:   provider,
		aggregator: aggregator,
		mailer:     mailer,
		now:        clock,
	}
}

func (h *ReportService) BuildReport(ctx context.Context, viewer domains.Viewer, request ReportRequest) (Report, error) {
	if !viewer.IsAdmin() {
		return Report{}, ErrForbidden
	}
	if request.View == "" {
		request.View = ReportBySample
	}
	if request.Format == "" {
		request.Format = report.FormatXLSX
	}

	samples, err := h.provider.ListSamplesForReport(ctx, request.SampleIDs)
	if err != nil {
		slog.Error("ListSamplesForReport failed", "err", err, "samples", len(request.SampleIDs))
		return Report{}, err
	}
	if len(samples) == 0 {
		return Report{}, ErrReportEmpty
	}

	table, err := h.buildTable(ctx, request.View, samples)
	if err != nil {
		slog.Error("build report table failed", "err", err, "view", request.View)
		return Report{}, err
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, request.Format, table); err != nil {
		return Report{}, fmt.Errorf("render report: %w", err)
	}

	id := uuid.New()
	slog.Info("report built", "report_id", id, "view", request.View, "format", request.Format, "samples", len(samples), "rows", len(table.Rows))

	return Report{
		ID:          id,
		Filename:    fmt.Sprintf("sample-report-%s-%s.%s", request.View, h.now().Format("20060102"), request.Format.Extension()),
		ContentType: request.Format.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// EmailReport renders the report as a spreadsheet and mails it as an attachment.
func (h *ReportService) EmailReport(ctx context.Context, viewer domains.Viewer, request ReportRequest, to string) (uuid.UUID, error) {
	request.Format = report.FormatXLSX
	built, err := h.BuildReport(ctx, viewer, request)
	if err != nil {
		return uuid.Nil, err
	}

	err = h.mailer.Send(ctx, mail.Message{
		To:      to,
		Subject: fmt.Sprintf("Sample report (%s)", request.View),
		HTML:    "<p>The requested sample report is attached.</p>",
		Attachments: []mail.Attachment{
			{Filename: built.Filename, Content: built.Body},
		},
	})
	if err != nil {
		slog.Error("report email failed", "err", err, "report_id", built.ID)
		return uuid.Nil, err
	}

	slog.Info("report emailed", "report_id", built.ID)
	return built.ID, nil
}

func (h *ReportService) buildTable(ctx context.Context, view ReportView, samples []domains.SampleWithProduct) (report.Table, error) {
	switch view {
	case ReportBySample:
		rows := make([][]string, 0, len(samples))
		for _, sample := range samples {
			row, err := h.aggregator.SampleReportRow(ctx, sample)
			if err != nil {
				return report.Table{}, err
			}
			rows = append(rows, row.Cells())
		}
		return report.Table{Sheet: "Samples", Header: stats.SampleReportHeader, Rows: rows}, nil
	case ReportByQuestion:
		rows := make([][]string, 0)
		for _, sample := range samples {
			questionRows, err := h.aggregator.QuestionReportRows(ctx, sample)
			if err != nil {
				return report.Table{}, err
			}
			for _, row := range questionRows {
				rows = append(rows, row.Cells())
			}
		}
		return report.Table{Sheet: "Questions", Header: stats.QuestionReportHeader, Rows: rows}, nil
	default:
		return report.Table{}, fmt.Errorf("%w: %q", ErrUnknownReportView, view)
	}
}
