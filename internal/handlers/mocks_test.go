package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/pkg/jwt"
	"github.com/langexchange/langexchange-api/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)

	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "test",
	}); err != nil {
		panic(err)
	}
}

type MockTutorService struct {
	mock.Mock
}

func (m *MockTutorService) ListTutors(ctx context.Context) ([]models.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockTutorService) ListTutorsByLanguage(ctx context.Context, language string) ([]models.Document, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockTutorService) ListTutorsByEmail(ctx context.Context, email string) ([]models.Document, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockTutorService) GetTutor(ctx context.Context, id string) (models.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Document), args.Error(1)
}

func (m *MockTutorService) CreateTutor(ctx context.Context, req models.TutorRequest) (*models.InsertResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InsertResult), args.Error(1)
}

func (m *MockTutorService) ReplaceTutor(ctx context.Context, id string, req models.TutorRequest) (*models.UpdateResult, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UpdateResult), args.Error(1)
}

func (m *MockTutorService) DeleteTutor(ctx context.Context, id string) (*models.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeleteResult), args.Error(1)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) ListBookings(ctx context.Context) ([]models.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockBookingService) ListBookingsByEmail(ctx context.Context, email string) ([]models.Document, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.InsertResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InsertResult), args.Error(1)
}

type MockLanguageService struct {
	mock.Mock
}

func (m *MockLanguageService) ListLanguages(ctx context.Context) ([]models.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) IssueToken(identity jwt.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) VerifyToken(token string) (jwt.Identity, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(jwt.Identity), args.Error(1)
}

func (m *MockAuthService) GetCookieSecure() bool {
	args := m.Called()
	return args.Bool(0)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}
