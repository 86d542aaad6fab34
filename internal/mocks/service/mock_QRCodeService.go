package service

import (
	"testing"

	svc "weightwise/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a testify mock for svc.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

var _ svc.QRCodeService = (*MockQRCodeService)(nil)

func NewMockQRCodeService(t *testing.T) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GenerateBusinessQR(businessID uuid.UUID) ([]byte, error) {
	args := m.Called(businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
