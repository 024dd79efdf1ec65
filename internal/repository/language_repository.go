package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/pkg/db"
)

// LanguageRepository reads the language collection
type LanguageRepository struct {
	languages collection
}

// NewLanguageRepository creates a new language repository
func NewLanguageRepository(database *mongo.Database) *LanguageRepository {
	return &LanguageRepository{
		languages: newCollection(database, db.LanguageCollection),
	}
}

// FindAll returns the whole catalog
func (r *LanguageRepository) FindAll(ctx context.Context) ([]models.Document, error) {
	return r.languages.find(ctx, bson.D{})
}

var _ LanguageStore = (*LanguageRepository)(nil)
