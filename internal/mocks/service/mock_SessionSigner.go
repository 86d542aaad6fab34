package service

import (
	"testing"

	svc "weightwise/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockSessionSigner is a testify mock for svc.SessionSigner.
type MockSessionSigner struct {
	mock.Mock
}

var _ svc.SessionSigner = (*MockSessionSigner)(nil)

func NewMockSessionSigner(t *testing.T) *MockSessionSigner {
	m := &MockSessionSigner{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSessionSigner) Sign(sid string) (string, error) {
	args := m.Called(sid)

	return args.String(0), args.Error(1)
}

func (m *MockSessionSigner) Parse(token string) (string, error) {
	args := m.Called(token)

	return args.String(0), args.Error(1)
}
