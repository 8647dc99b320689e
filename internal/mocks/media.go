package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tastebase/backend/internal/service"
)

// MockMediaService is a mock implementation of the media service
type MockMediaService struct {
	mock.Mock
}

// UploadImage mocks the UploadImage method
func (m *MockMediaService) UploadImage(ctx context.Context, data []byte, contentType, fileName string) (*service.ImageUpload, error) {
	args := m.Called(ctx, data, contentType, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImageUpload), args.Error(1)
}
