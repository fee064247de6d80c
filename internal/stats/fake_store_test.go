package stats

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"samplehub/internal/domains"
)

type fakeStore struct {
	mu sync.Mutex

	questions map[uuid.UUID][]domains.Question
	byOption  map[uuid.UUID]map[uuid.UUID]int
	answered  map[uuid.UUID]map[uuid.UUID]int
	users     map[uuid.UUID]int
	reviews   map[uuid.UUID]int

	err   error
	calls map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		questions: map[uuid.UUID][]domains.Question{},
		byOption:  map[uuid.UUID]map[uuid.UUID]int{},
		answered:  map[uuid.UUID]map[uuid.UUID]int{},
		users:     map[uuid.UUID]int{},
		reviews:   map[uuid.UUID]int{},
		calls:     map[string]int{},
	}
}

func (f *fakeStore) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.err
}

func (f *fakeStore) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeStore) ListQuestionsWithOptions(_ context.Context, sampleID uuid.UUID) ([]domains.Question, error) {
	if err := f.record("ListQuestionsWithOptions"); err != nil {
		return nil, err
	}
	return f.questions[sampleID], nil
}

func (f *fakeStore) CountResponsesByOption(_ context.Context, questionID uuid.UUID) (map[uuid.UUID]int, error) {
	if err := f.record("CountResponsesByOption"); err != nil {
		return nil, err
	}
	return f.byOption[questionID], nil
}

func (f *fakeStore) CountAnsweredQuestionsByUser(_ context.Context, sampleID uuid.UUID) (map[uuid.UUID]int, error) {
	if err := f.record("CountAnsweredQuestionsByUser"); err != nil {
		return nil, err
	}
	return f.answered[sampleID], nil
}

func (f *fakeStore) CountSampleUsers(_ context.Context, sampleID uuid.UUID) (int, error) {
	if err := f.record("CountSampleUsers"); err != nil {
		return 0, err
	}
	return f.users[sampleID], nil
}

func (f *fakeStore) CountFilledReviews(_ context.Context, sampleID uuid.UUID) (int, error) {
	if err := f.record("CountFilledReviews"); err != nil {
		return 0, err
	}
	return f.reviews[sampleID], nil
}
