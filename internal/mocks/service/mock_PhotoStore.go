package service

import (
	"context"
	"io"
	"testing"

	svc "weightwise/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPhotoStore is a testify mock for svc.PhotoStore.
type MockPhotoStore struct {
	mock.Mock
}

var _ svc.PhotoStore = (*MockPhotoStore)(nil)

func NewMockPhotoStore(t *testing.T) *MockPhotoStore {
	m := &MockPhotoStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPhotoStore) Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, filename, contentType, r)

	return args.String(0), args.Error(1)
}
