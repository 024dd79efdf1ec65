package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/internal/repository"
	"github.com/langexchange/langexchange-api/pkg/errors"
	"github.com/langexchange/langexchange-api/pkg/logger"
	"github.com/langexchange/langexchange-api/pkg/metrics"
)

// TutorService handles tutor profiles. Mutations are not owner-checked;
// only the /mytutors listing is gated.
type TutorService struct {
	store repository.TutorStore
}

func NewTutorService(store repository.TutorStore) *TutorService {
	return &TutorService{store: store}
}

func (s *TutorService) ListTutors(ctx context.Context) ([]models.Document, error) {
	return s.store.FindAll(ctx)
}

func (s *TutorService) ListTutorsByLanguage(ctx context.Context, language string) ([]models.Document, error) {
	return s.store.FindByLanguage(ctx, language)
}

func (s *TutorService) ListTutorsByEmail(ctx context.Context, email string) ([]models.Document, error) {
	return s.store.FindByEmail(ctx, email)
}

// GetTutor returns the tutor with the id, or nil when none exists
func (s *TutorService) GetTutor(ctx context.Context, id string) (models.Document, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, oid)
}

// CreateTutor stores the payload as submitted, minus any client _id
func (s *TutorService) CreateTutor(ctx context.Context, req models.TutorRequest) (*models.InsertResult, error) {
	res, err := s.store.Insert(ctx, req.Document())
	metrics.TutorWrites.WithLabelValues("create", metrics.StatusLabel(err)).Inc()
	if err != nil {
		return nil, err
	}

	logger.Info("Tutor created",
		zap.String("tutor_id", res.InsertedID),
		zap.String("language", req.Language()))
	return res, nil
}

// ReplaceTutor sets the named tutor fields on the document with the id,
// creating it at that id when it does not exist yet. Fields missing from
// the payload become null.
func (s *TutorService) ReplaceTutor(ctx context.Context, id string, req models.TutorRequest) (*models.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		metrics.TutorWrites.WithLabelValues("replace", "invalid").Inc()
		return nil, err
	}

	res, err := s.store.Upsert(ctx, oid, req.Fields())
	metrics.TutorWrites.WithLabelValues("replace", metrics.StatusLabel(err)).Inc()
	if err != nil {
		return nil, err
	}

	logger.Info("Tutor replaced",
		zap.String("tutor_id", id),
		zap.Int64("matched", res.MatchedCount),
		zap.Int64("upserted", res.UpsertedCount))
	return res, nil
}

// DeleteTutor removes the tutor with the id. Deleting a missing tutor is
// not an error; the result reports deletedCount 0.
func (s *TutorService) DeleteTutor(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		metrics.TutorWrites.WithLabelValues("delete", "invalid").Inc()
		return nil, err
	}

	res, err := s.store.Delete(ctx, oid)
	metrics.TutorWrites.WithLabelValues("delete", metrics.StatusLabel(err)).Inc()
	if err != nil {
		return nil, err
	}

	logger.Info("Tutor deleted",
		zap.String("tutor_id", id),
		zap.Int64("deleted", res.DeletedCount))
	return res, nil
}

// parseID converts a hex path identifier into an ObjectID
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.InvalidIDError(id)
	}
	return oid, nil
}
