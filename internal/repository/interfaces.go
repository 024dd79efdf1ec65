package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/langexchange/langexchange-api/internal/models"
)

// LanguageStore reads the language catalog
type LanguageStore interface {
	// FindAll returns every language document
	FindAll(ctx context.Context) ([]models.Document, error)
}

// TutorStore defines tutor profile persistence
type TutorStore interface {
	FindAll(ctx context.Context) ([]models.Document, error)
	FindByLanguage(ctx context.Context, language string) ([]models.Document, error)
	FindByEmail(ctx context.Context, email string) ([]models.Document, error)

	// FindByID returns nil and no error when no document has the id
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Document, error)

	Insert(ctx context.Context, tutor models.Document) (*models.InsertResult, error)

	// Upsert sets fields on the document with the id, creating it if needed
	Upsert(ctx context.Context, id primitive.ObjectID, fields bson.D) (*models.UpdateResult, error)

	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

// BookingStore defines booking persistence
type BookingStore interface {
	FindAll(ctx context.Context) ([]models.Document, error)
	FindByEmail(ctx context.Context, email string) ([]models.Document, error)
	Insert(ctx context.Context, booking models.Document) (*models.InsertResult, error)
}
