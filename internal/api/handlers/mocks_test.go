package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wanderlust/backend/internal/models"
)

// --- Mocks ---

// MockEnquiryService mocks services.IEnquiryService.
type MockEnquiryService struct {
	mock.Mock
}

func (m *MockEnquiryService) CreateEnquiry(ctx context.Context, enquiry *models.Enquiry) (*models.Enquiry, error) {
	args := m.Called(ctx, enquiry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Enquiry), args.Error(1)
}

// MockNotificationService mocks services.INotificationService.
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) NotifyEnquiry(ctx context.Context, enquiry *models.Enquiry) error {
	args := m.Called(ctx, enquiry)
	return args.Error(0)
}
