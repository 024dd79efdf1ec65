// Package repositorytest provides in-memory stores for tests of code built
// on the repository interfaces.
package repositorytest

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/internal/repository"
)

// TutorStore keeps tutors in a map keyed by _id, following the
// collection's insert, $set upsert and delete semantics.
type TutorStore struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]models.Document
}

// NewTutorStore returns an empty tutor store
func NewTutorStore() *TutorStore {
	return &TutorStore{docs: make(map[primitive.ObjectID]models.Document)}
}

func (s *TutorStore) filter(match func(models.Document) bool) []models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Document{}
	for _, doc := range s.docs {
		if match(doc) {
			out = append(out, doc)
		}
	}
	return out
}

func (s *TutorStore) FindAll(ctx context.Context) ([]models.Document, error) {
	return s.filter(func(models.Document) bool { return true }), nil
}

func (s *TutorStore) FindByLanguage(ctx context.Context, language string) ([]models.Document, error) {
	return s.filter(func(d models.Document) bool { return d[models.TutorFieldLanguage] == language }), nil
}

func (s *TutorStore) FindByEmail(ctx context.Context, email string) ([]models.Document, error) {
	return s.filter(func(d models.Document) bool { return d[models.TutorFieldEmail] == email }), nil
}

func (s *TutorStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (s *TutorStore) Insert(ctx context.Context, tutor models.Document) (*models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := primitive.NewObjectID()
	doc := models.Document{"_id": id}
	for k, v := range tutor {
		doc[k] = v
	}
	s.docs[id] = doc
	return &models.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

func (s *TutorStore) Upsert(ctx context.Context, id primitive.ObjectID, fields bson.D) (*models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := &models.UpdateResult{Acknowledged: true}
	doc, ok := s.docs[id]
	if ok {
		res.MatchedCount = 1
		res.ModifiedCount = 1
	} else {
		doc = models.Document{"_id": id}
		hex := id.Hex()
		res.UpsertedCount = 1
		res.UpsertedID = &hex
	}
	for _, e := range fields {
		doc[e.Key] = e.Value
	}
	s.docs[id] = doc
	return res, nil
}

func (s *TutorStore) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := &models.DeleteResult{Acknowledged: true}
	if _, ok := s.docs[id]; ok {
		delete(s.docs, id)
		res.DeletedCount = 1
	}
	return res, nil
}

var _ repository.TutorStore = (*TutorStore)(nil)
