package services

import (
	"context"

	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/internal/repository"
)

type LanguageService struct {
	store repository.LanguageStore
}

// NewLanguageService creates a language service. store may be the
// repository itself or a cache in front of it.
func NewLanguageService(store repository.LanguageStore) *LanguageService {
	return &LanguageService{store: store}
}

func (s *LanguageService) ListLanguages(ctx context.Context) ([]models.Document, error) {
	return s.store.FindAll(ctx)
}
