package services

import (
	"context"

	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/pkg/jwt"
)

// LanguageServiceInterface defines the interface for language catalog reads
type LanguageServiceInterface interface {
	ListLanguages(ctx context.Context) ([]models.Document, error)
}

// TutorServiceInterface defines the interface for tutor profile operations.
// Identifiers are the hex form of the document _id.
type TutorServiceInterface interface {
	ListTutors(ctx context.Context) ([]models.Document, error)
	ListTutorsByLanguage(ctx context.Context, language string) ([]models.Document, error)
	ListTutorsByEmail(ctx context.Context, email string) ([]models.Document, error)
	GetTutor(ctx context.Context, id string) (models.Document, error)
	CreateTutor(ctx context.Context, req models.TutorRequest) (*models.InsertResult, error)
	ReplaceTutor(ctx context.Context, id string, req models.TutorRequest) (*models.UpdateResult, error)
	DeleteTutor(ctx context.Context, id string) (*models.DeleteResult, error)
}

// BookingServiceInterface defines the interface for booking operations
type BookingServiceInterface interface {
	ListBookings(ctx context.Context) ([]models.Document, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]models.Document, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.InsertResult, error)
}

// AuthServiceInterface defines session token issuance and verification
type AuthServiceInterface interface {
	IssueToken(identity jwt.Identity) (string, error)
	VerifyToken(token string) (jwt.Identity, error)
	GetCookieSecure() bool
}

// Ensure services implement their interfaces
var _ LanguageServiceInterface = (*LanguageService)(nil)
var _ TutorServiceInterface = (*TutorService)(nil)
var _ BookingServiceInterface = (*BookingService)(nil)
var _ AuthServiceInterface = (*AuthService)(nil)
