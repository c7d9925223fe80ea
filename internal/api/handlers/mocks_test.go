package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kchitera56/bakholokoe-website/internal/models"
)

// --- Mocks ---

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) ListByUser(ctx context.Context, userEmail string) ([]models.Booking, error) {
	args := m.Called(ctx, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

// MockReviewService
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) HasReviewBy(ctx context.Context, userEmail string) (bool, error) {
	args := m.Called(ctx, userEmail)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewService) CreateReview(ctx context.Context, userEmail, name, review, rating string) (*models.Review, error) {
	args := m.Called(ctx, userEmail, name, review, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

// MockContactService
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) CreateMessage(ctx context.Context, name, email, phone, message string) (*models.ContactMessage, error) {
	args := m.Called(ctx, name, email, phone, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockContactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BookingCreated(ctx context.Context, booking models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockNotifier) ReviewCreated(ctx context.Context, review models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockNotifier) ContactMessageReceived(ctx context.Context, msg models.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockGalleryStorage
type MockGalleryStorage struct {
	mock.Mock
}

func (m *MockGalleryStorage) ListImageURLs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
