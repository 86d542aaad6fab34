package repository

import (
	"context"
	"testing"
	"time"

	"weightwise/internal/domain/entity"
	repo "weightwise/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a testify mock for repo.SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

var _ repo.SessionRepository = (*MockSessionRepository)(nil)

func NewMockSessionRepository(t *testing.T) *MockSessionRepository {
	m := &MockSessionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)

	return args.Error(0)
}

func (m *MockSessionRepository) FindBySID(ctx context.Context, sid string) (*entity.Session, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, sid string) error {
	args := m.Called(ctx, sid)

	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)

	return args.Get(0).(int64), args.Error(1)
}
