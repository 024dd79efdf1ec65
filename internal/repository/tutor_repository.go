package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/pkg/db"
)

// TutorRepository handles tutor profile data access
type TutorRepository struct {
	tutors collection
}

// NewTutorRepository creates a new tutor repository
func NewTutorRepository(database *mongo.Database) *TutorRepository {
	return &TutorRepository{
		tutors: newCollection(database, db.TutorsCollection),
	}
}

// FindAll returns every tutor
func (r *TutorRepository) FindAll(ctx context.Context) ([]models.Document, error) {
	return r.tutors.find(ctx, bson.D{})
}

// FindByLanguage returns tutors whose language field equals language
func (r *TutorRepository) FindByLanguage(ctx context.Context, language string) ([]models.Document, error) {
	return r.tutors.find(ctx, bson.D{{Key: models.TutorFieldLanguage, Value: language}})
}

// FindByEmail returns tutors whose contact email equals email
func (r *TutorRepository) FindByEmail(ctx context.Context, email string) ([]models.Document, error) {
	return r.tutors.find(ctx, bson.D{{Key: models.TutorFieldEmail, Value: email}})
}

// FindByID returns the tutor with the id, or nil
func (r *TutorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Document, error) {
	return r.tutors.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

// Insert stores a new tutor as given; the driver assigns its _id
func (r *TutorRepository) Insert(ctx context.Context, tutor models.Document) (*models.InsertResult, error) {
	return r.tutors.insertOne(ctx, tutor)
}

// Upsert sets the tutor fields on the document with the id. When no
// document matches, one is created with that id.
func (r *TutorRepository) Upsert(ctx context.Context, id primitive.ObjectID, fields bson.D) (*models.UpdateResult, error) {
	return r.tutors.updateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: fields}},
		options.Update().SetUpsert(true),
	)
}

// Delete removes the tutor with the id
func (r *TutorRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return r.tutors.deleteOne(ctx, bson.D{{Key: "_id", Value: id}})
}

var _ TutorStore = (*TutorRepository)(nil)
