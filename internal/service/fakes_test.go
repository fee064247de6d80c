package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"samplehub/internal/domains"
	"samplehub/internal/mail"
	"samplehub/internal/storage"
)

type fakeProvider struct {
	samples   map[uuid.UUID]domains.SampleWithProduct
	order     []uuid.UUID
	questions map[uuid.UUID][]domains.Question
	byOption  map[uuid.UUID]map[uuid.UUID]int
	users     map[uuid.UUID]int
	reviews   map[uuid.UUID][]domains.SampleReview
	err       error

	lastFilter domains.SampleFilter
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		samples:   map[uuid.UUID]domains.SampleWithProduct{},
		questions: map[uuid.UUID][]domains.Question{},
		byOption:  map[uuid.UUID]map[uuid.UUID]int{},
		users:     map[uuid.UUID]int{},
		reviews:   map[uuid.UUID][]domains.SampleReview{},
	}
}

func (f *fakeProvider) add(sample domains.SampleWithProduct) {
	f.samples[sample.ID] = sample
	f.order = append(f.order, sample.ID)
}

func (f *fakeProvider) GetSampleByID(_ context.Context, id uuid.UUID, filter domains.SampleFilter) (domains.Sample, error) {
	f.lastFilter = filter
	if f.err != nil {
		return domains.Sample{}, f.err
	}
	sample, ok := f.samples[id]
	if !ok {
		return domains.Sample{}, storage.ErrNotFound
	}
	if filter.PublishedOnly && (sample.IsDraft || !sample.IsActive) {
		return domains.Sample{}, storage.ErrNotFound
	}
	if filter.ActiveAt != nil && (sample.StartDate == nil || sample.StartDate.After(*filter.ActiveAt)) {
		return domains.Sample{}, storage.ErrNotFound
	}
	return sample.Sample, nil
}

func (f *fakeProvider) ListSamples(_ context.Context, page domains.Page) ([]domains.SampleWithProduct, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	out := []domains.SampleWithProduct{}
	for i := page.Offset(); i < len(f.order) && len(out) < page.Limit; i++ {
		out = append(out, f.samples[f.order[i]])
	}
	return out, len(f.order), nil
}

func (f *fakeProvider) ListSamplesForReport(_ context.Context, ids []uuid.UUID) ([]domains.SampleWithProduct, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domains.SampleWithProduct{}
	if len(ids) == 0 {
		for _, id := range f.order {
			if !f.samples[id].IsDraft {
				out = append(out, f.samples[id])
			}
		}
		return out, nil
	}
	for _, id := range ids {
		if sample, ok := f.samples[id]; ok {
			out = append(out, sample)
		}
	}
	return out, nil
}

func (f *fakeProvider) GetSampleReview(_ context.Context, sampleID, userID uuid.UUID) (domains.SampleReview, error) {
	for _, review := range f.reviews[sampleID] {
		if review.UserID == userID {
			return review, nil
		}
	}
	return domains.SampleReview{}, storage.ErrNotFound
}

func (f *fakeProvider) ListQuestionsWithOptions(_ context.Context, sampleID uuid.UUID) ([]domains.Question, error) {
	return f.questions[sampleID], nil
}

func (f *fakeProvider) CountResponsesByOption(_ context.Context, questionID uuid.UUID) (map[uuid.UUID]int, error) {
	return f.byOption[questionID], nil
}

func (f *fakeProvider) CountAnsweredQuestionsByUser(_ context.Context, _ uuid.UUID) (map[uuid.UUID]int, error) {
	return map[uuid.UUID]int{}, nil
}

func (f *fakeProvider) CountSampleUsers(_ context.Context, sampleID uuid.UUID) (int, error) {
	return f.users[sampleID], nil
}

func (f *fakeProvider) CountFilledReviews(_ context.Context, sampleID uuid.UUID) (int, error) {
	filled := 0
	for _, review := range f.reviews[sampleID] {
		if !domains.IsReviewPending(review) {
			filled++
		}
	}
	return filled, nil
}

type fakeUsers map[uuid.UUID]domains.User

func (f fakeUsers) GetUserByID(_ context.Context, id uuid.UUID) (domains.User, error) {
	user, ok := f[id]
	if !ok {
		return domains.User{}, storage.ErrNotFound
	}
	return user, nil
}

type fakeMailer struct {
	sent []mail.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

var (
	admin = domains.Viewer{UserID: uuid.New(), Role: domains.RoleAdmin}
	user  = domains.Viewer{UserID: uuid.New(), Role: domains.RoleUser}
)

func seededProvider() (*fakeProvider, domains.SampleWithProduct) {
	provider := newFakeProvider()
	sample := domains.SampleWithProduct{
		Sample: domains.Sample{
			ID:            uuid.New(),
			Name:          "Oat milk",
			StartDate:     date(2024, 1, 1),
			EndDate:       date(2024, 1, 10),
			MaximumSample: 10,
			IsActive:      true,
		},
		ProductName:  "Oatly",
		ProductImage: "oat.png",
	}
	provider.add(sample)

	question := domains.Question{ID: uuid.New(), SampleID: sample.ID, Prompt: "Would you buy it?", AnswerType: domains.AnswerSingle}
	yes, no := uuid.New(), uuid.New()
	question.Options = []domains.Option{{ID: yes, Label: "Yes"}, {ID: no, Label: "No"}}
	provider.questions[sample.ID] = []domains.Question{question}
	provider.byOption[question.ID] = map[uuid.UUID]int{yes: 2, no: 1}
	provider.users[sample.ID] = 4
	provider.reviews[sample.ID] = []domains.SampleReview{
		{UserID: uuid.New(), Comment: "good"},
		{UserID: uuid.New(), Comment: "fine"},
		{UserID: uuid.New(), Comment: "ok"},
		{UserID: user.UserID},
	}
	return provider, sample
}
