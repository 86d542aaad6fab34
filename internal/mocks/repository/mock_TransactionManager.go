package repository

import (
	"context"
	"testing"

	repo "weightwise/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a testify mock for repo.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

var _ repo.TransactionManager = (*MockTransactionManager)(nil)

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repos repo.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// MockRepositoryFactory is a testify mock for repo.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

var _ repo.RepositoryFactory = (*MockRepositoryFactory)(nil)

func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repo.UserRepository {
	args := m.Called()

	return args.Get(0).(repo.UserRepository)
}

func (m *MockRepositoryFactory) SessionRepo() repo.SessionRepository {
	args := m.Called()

	return args.Get(0).(repo.SessionRepository)
}
