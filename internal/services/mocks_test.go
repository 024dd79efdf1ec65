package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/langexchange/langexchange-api/internal/models"
)

// MockLanguageStore is a mock implementation of repository.LanguageStore
type MockLanguageStore struct {
	mock.Mock
}

func (m *MockLanguageStore) FindAll(ctx context.Context) ([]models.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

// MockTutorStore is a mock implementation of repository.TutorStore
type MockTutorStore struct {
	mock.Mock
}

func (m *MockTutorStore) FindAll(ctx context.Context) ([]models.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockTutorStore) FindByLanguage(ctx context.Context, language string) ([]models.Document, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockTutorStore) FindByEmail(ctx context.Context, email string) ([]models.Document, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockTutorStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Document), args.Error(1)
}

func (m *MockTutorStore) Insert(ctx context.Context, tutor models.Document) (*models.InsertResult, error) {
	args := m.Called(ctx, tutor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InsertResult), args.Error(1)
}

func (m *MockTutorStore) Upsert(ctx context.Context, id primitive.ObjectID, fields bson.D) (*models.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UpdateResult), args.Error(1)
}

func (m *MockTutorStore) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeleteResult), args.Error(1)
}

// MockBookingStore is a mock implementation of repository.BookingStore
type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) FindAll(ctx context.Context) ([]models.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockBookingStore) FindByEmail(ctx context.Context, email string) ([]models.Document, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockBookingStore) Insert(ctx context.Context, booking models.Document) (*models.InsertResult, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InsertResult), args.Error(1)
}
