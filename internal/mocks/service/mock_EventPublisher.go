package service

import (
	"context"
	"testing"

	svc "weightwise/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a testify mock for svc.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

var _ svc.EventPublisher = (*MockEventPublisher)(nil)

func NewMockEventPublisher(t *testing.T) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishActivityEvent(ctx context.Context, event *svc.ActivityEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}
