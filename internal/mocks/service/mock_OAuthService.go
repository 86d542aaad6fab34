// Package service provides testify mocks for the domain service contracts,
// used by the usecase-layer tests.
package service

import (
	"context"
	"testing"

	svc "weightwise/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockOAuthService is a testify mock for svc.OAuthService.
type MockOAuthService struct {
	mock.Mock
}

var _ svc.OAuthService = (*MockOAuthService)(nil)

func NewMockOAuthService(t *testing.T) *MockOAuthService {
	m := &MockOAuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOAuthService) BuildAuthorizationURL(state string) string {
	args := m.Called(state)

	return args.String(0)
}

func (m *MockOAuthService) GenerateState() string {
	args := m.Called()

	return args.String(0)
}

func (m *MockOAuthService) ValidateState(state string) bool {
	args := m.Called(state)

	return args.Bool(0)
}

func (m *MockOAuthService) Exchange(ctx context.Context, code string) (*svc.OAuthUser, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*svc.OAuthUser), args.Error(1)
}
