package repositorytest

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/internal/repository"
)

// BookingStore keeps bookings in insertion order
type BookingStore struct {
	mu   sync.Mutex
	docs []models.Document
}

func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

func (s *BookingStore) FindAll(ctx context.Context) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Document{}, s.docs...), nil
}

func (s *BookingStore) FindByEmail(ctx context.Context, email string) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Document{}
	for _, doc := range s.docs {
		if doc[models.BookingFieldEmail] == email {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *BookingStore) Insert(ctx context.Context, booking models.Document) (*models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := primitive.NewObjectID()
	doc := models.Document{"_id": id}
	for k, v := range booking {
		doc[k] = v
	}
	s.docs = append(s.docs, doc)
	return &models.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

// LanguageStore serves a fixed catalog
type LanguageStore struct {
	Languages []models.Document
}

func (s *LanguageStore) FindAll(ctx context.Context) ([]models.Document, error) {
	if s.Languages == nil {
		return []models.Document{}, nil
	}
	return s.Languages, nil
}

var (
	_ repository.BookingStore  = (*BookingStore)(nil)
	_ repository.LanguageStore = (*LanguageStore)(nil)
)
