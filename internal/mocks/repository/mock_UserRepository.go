// Package repository provides testify mocks for the domain repository
// interfaces, used by the usecase-layer tests.
package repository

import (
	"context"
	"testing"

	"weightwise/internal/domain/entity"
	repo "weightwise/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock for repo.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

var _ repo.UserRepository = (*MockUserRepository)(nil)

// NewMockUserRepository creates the mock and registers expectation checks
// with the test's cleanup.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}
