package service

import (
	"io"
	"testing"

	svc "weightwise/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockWeightDetector is a testify mock for svc.WeightDetector.
type MockWeightDetector struct {
	mock.Mock
}

var _ svc.WeightDetector = (*MockWeightDetector)(nil)

func NewMockWeightDetector(t *testing.T) *MockWeightDetector {
	m := &MockWeightDetector{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWeightDetector) DetectWeight(photo io.Reader) (string, error) {
	args := m.Called(photo)

	return args.String(0), args.Error(1)
}
