package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/internal/repository"
	"github.com/langexchange/langexchange-api/pkg/errors"
	"github.com/langexchange/langexchange-api/pkg/logger"
	"github.com/langexchange/langexchange-api/pkg/metrics"
)

// BookingService handles tutor bookings. Bookings are stored as sent; the
// referenced tutor is not checked for existence.
type BookingService struct {
	store repository.BookingStore
}

func NewBookingService(store repository.BookingStore) *BookingService {
	return &BookingService{store: store}
}

func (s *BookingService) ListBookings(ctx context.Context) ([]models.Document, error) {
	return s.store.FindAll(ctx)
}

func (s *BookingService) ListBookingsByEmail(ctx context.Context, email string) ([]models.Document, error) {
	return s.store.FindByEmail(ctx, email)
}

func (s *BookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.InsertResult, error) {
	if fieldErr := req.Validate(); fieldErr != nil {
		metrics.BookingsCreated.WithLabelValues("invalid").Inc()
		return nil, errors.InvalidInputError(fieldErr.Field, fieldErr.Message)
	}

	res, err := s.store.Insert(ctx, req.Document())
	metrics.BookingsCreated.WithLabelValues(metrics.StatusLabel(err)).Inc()
	if err != nil {
		return nil, err
	}

	logger.Info("Booking created", zap.String("booking_id", res.InsertedID))
	return res, nil
}
