package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samplehub/internal/domains"
	"samplehub/internal/httpx"
	"samplehub/internal/report"
	"samplehub/internal/service"
)

const secret = "router-secret"

type fakeSamples struct {
	detail   domains.SampleDetail
	view     domains.UserSampleView
	list     domains.SampleList
	err      error
	lastPage domains.Page
	lastID   uuid.UUID
}

func (f *fakeSamples) GetSampleDetail(_ context.Context, viewer domains.Viewer, id uuid.UUID) (domains.SampleDetail, error) {
	f.lastID = id
	if !viewer.IsAdmin() {
		return domains.SampleDetail{}, service.ErrForbidden
	}
	return f.detail, f.err
}

func (f *fakeSamples) ListSamples(_ context.Context, _ domains.Viewer, page domains.Page) (domains.SampleList, error) {
	f.lastPage = page
	return f.list, f.err
}

func (f *fakeSamples) GetUserSample(_ context.Context, _ domains.Viewer, id uuid.UUID) (domains.UserSampleView, error) {
	f.lastID = id
	return f.view, f.err
}

type fakeReports struct {
	built       service.Report
	err         error
	lastRequest service.ReportRequest
	lastTo      string
}

func (f *fakeReports) BuildReport(_ context.Context, _ domains.Viewer, request service.ReportRequest) (service.Report, error) {
	f.lastRequest = request
	return f.built, f.err
}

func (f *fakeReports) EmailReport(_ context.Context, _ domains.Viewer, request service.ReportRequest, to string) (uuid.UUID, error) {
	f.lastRequest = request
	f.lastTo = to
	return f.built.ID, f.err
}

func token(t *testing.T, role domains.Role) string {
	t.Helper()
	signed, err := httpx.SignViewer(domains.Viewer{UserID: uuid.New(), Role: role}, secret, time.Now().Add(time.Hour).Unix())
	require.NoError(t, err)
	return "Bearer " + signed
}

func do(t *testing.T, router http.Handler, method, target, auth string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSampleDetailRoute(t *testing.T) {
	id := uuid.New()
	samples := &fakeSamples{detail: domains.SampleDetail{Sample: domains.Sample{ID: id, Name: "Oat milk"}}}
	router := Router(samples, &fakeReports{}, secret)

	rec := do(t, router, http.MethodGet, "/api/samples/"+id.String(), token(t, domains.RoleAdmin), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domains.SampleDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Oat milk", got.Sample.Name)
	assert.Equal(t, id, samples.lastID)
}

func TestSampleDetailStatusCodes(t *testing.T) {
	id := uuid.New().String()
	tests := []struct {
		name string
		auth string
		err  error
		path string
		want int
	}{
		{"no token", "", nil, "/api/samples/" + id, http.StatusUnauthorized},
		{"non admin", "user", nil, "/api/samples/" + id, http.StatusForbidden},
		{"not found", "admin", service.ErrSampleNotFound, "/api/samples/" + id, http.StatusNotFound},
		{"storage failure", "admin", errors.New("db down"), "/api/samples/" + id, http.StatusInternalServerError},
		{"bad id", "admin", nil, "/api/samples/000000000000000000000000000000000000", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := Router(&fakeSamples{err: tt.err}, &fakeReports{}, secret)
			auth := ""
			if tt.auth != "" {
				auth = token(t, domains.Role(tt.auth))
			}
			rec := do(t, router, http.MethodGet, tt.path, auth, nil)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestListSamplesPagination(t *testing.T) {
	samples := &fakeSamples{list: domains.SampleList{Total: 0, Page: 2, Limit: 5}}
	router := Router(samples, &fakeReports{}, secret)
	admin := token(t, domains.RoleAdmin)

	rec := do(t, router, http.MethodGet, "/api/samples?page=2&limit=5", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domains.Page{Page: 2, Limit: 5}, samples.lastPage)

	rec = do(t, router, http.MethodGet, "/api/samples", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domains.Page{Page: 1, Limit: 20}, samples.lastPage)

	for _, query := range []string{"?page=0", "?limit=101", "?limit=abc"} {
		rec = do(t, router, http.MethodGet, "/api/samples"+query, admin, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestUserSampleRoute(t *testing.T) {
	id := uuid.New()
	samples := &fakeSamples{view: domains.UserSampleView{SampleID: id, ReviewStatus: domains.ReviewPending}}
	router := Router(samples, &fakeReports{}, secret)

	rec := do(t, router, http.MethodGet, "/api/me/samples/"+id.String(), token(t, domains.RoleUser), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"review_status":"pending"`)
}

func TestDownloadReport(t *testing.T) {
	reports := &fakeReports{built: service.Report{
		ID:          uuid.New(),
		Filename:    "sample-report-question-20240105.csv",
		ContentType: report.FormatCSV.ContentType(),
		Body:        []byte("Sample,Question\n"),
	}}
	router := Router(&fakeSamples{}, reports, secret)
	a, b := uuid.New(), uuid.New()

	rec := do(t, router, http.MethodGet, "/api/samples/report?format=csv&view=question&ids="+a.String()+","+b.String(), token(t, domains.RoleAdmin), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.FormatCSV.ContentType(), rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "sample-report-question-20240105.csv")
	assert.Equal(t, "Sample,Question\n", rec.Body.String())
	assert.Equal(t, service.ReportRequest{SampleIDs: []uuid.UUID{a, b}, View: service.ReportByQuestion, Format: report.FormatCSV}, reports.lastRequest)
}

func TestDownloadReportBadQuery(t *testing.T) {
	router := Router(&fakeSamples{}, &fakeReports{}, secret)
	admin := token(t, domains.RoleAdmin)

	for _, query := range []string{"?format=pdf", "?view=pivot", "?ids=1,2"} {
		rec := do(t, router, http.MethodGet, "/api/samples/report"+query, admin, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestEmailReport(t *testing.T) {
	reports := &fakeReports{built: service.Report{ID: uuid.New()}}
	router := Router(&fakeSamples{}, reports, secret)
	id := uuid.New()
	body, err := json.Marshal(ReportEmailRequest{Email: "ops@example.com", SampleIDs: []uuid.UUID{id}, View: "sample"})
	require.NoError(t, err)

	rec := do(t, router, http.MethodPost, "/api/samples/report/email", token(t, domains.RoleAdmin), body)

	require.Equal(t, http.StatusAccepted, rec.Code)
	var got ReportEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, reports.built.ID, got.ReportID)
	assert.Equal(t, "ops@example.com", reports.lastTo)
	assert.Equal(t, []uuid.UUID{id}, reports.lastRequest.SampleIDs)
}

func TestEmailReportValidation(t *testing.T) {
	router := Router(&fakeSamples{}, &fakeReports{}, secret)
	admin := token(t, domains.RoleAdmin)

	for _, body := range []string{`{`, `{"email":"not-an-email"}`, `{"email":"ops@example.com","view":"pivot"}`} {
		rec := do(t, router, http.MethodPost, "/api/samples/report/email", admin, []byte(body))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}
