package repository

import (
	"context"
	"testing"

	"weightwise/internal/domain/entity"
	repo "weightwise/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockPreferencesRepository is a testify mock for repo.PreferencesRepository.
type MockPreferencesRepository struct {
	mock.Mock
}

var _ repo.PreferencesRepository = (*MockPreferencesRepository)(nil)

func NewMockPreferencesRepository(t *testing.T) *MockPreferencesRepository {
	m := &MockPreferencesRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPreferencesRepository) Upsert(ctx context.Context, prefs *entity.CustomerPreferences) error {
	args := m.Called(ctx, prefs)

	return args.Error(0)
}

func (m *MockPreferencesRepository) FindByUser(ctx context.Context, userID string) (*entity.CustomerPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CustomerPreferences), args.Error(1)
}
