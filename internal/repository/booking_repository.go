package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/pkg/db"
)

// BookingRepository handles the booked collection. Bookings reference
// tutors loosely; no tutor existence check is made.
type BookingRepository struct {
	booked collection
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(database *mongo.Database) *BookingRepository {
	return &BookingRepository{
		booked: newCollection(database, db.BookedCollection),
	}
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]models.Document, error) {
	return r.booked.find(ctx, bson.D{})
}

func (r *BookingRepository) FindByEmail(ctx context.Context, email string) ([]models.Document, error) {
	return r.booked.find(ctx, bson.D{{Key: models.BookingFieldEmail, Value: email}})
}

func (r *BookingRepository) Insert(ctx context.Context, booking models.Document) (*models.InsertResult, error) {
	return r.booked.insertOne(ctx, booking)
}

var _ BookingStore = (*BookingRepository)(nil)
