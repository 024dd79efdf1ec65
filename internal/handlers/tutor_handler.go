package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/langexchange/langexchange-api/internal/middleware"
	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/internal/services"
	"github.com/langexchange/langexchange-api/pkg/errors"
	"github.com/langexchange/langexchange-api/pkg/logger"
	"github.com/langexchange/langexchange-api/pkg/metrics"
)

// ForbiddenMessage is the body message when a token owner requests
// another owner's tutors
const ForbiddenMessage = "Forbidden Access"

// TutorHandler serves tutor profiles. Every handler runs one store
// operation and returns its result unwrapped.
type TutorHandler struct {
	service services.TutorServiceInterface
}

func NewTutorHandler(service services.TutorServiceInterface) *TutorHandler {
	return &TutorHandler{service: service}
}

// ListTutors handles GET /tutors
func (h *TutorHandler) ListTutors(c *gin.Context) {
	tutors, err := h.service.ListTutors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tutors)
}

// ListTutorsByLanguage handles GET /tutors/:language
// The match is exact and case-sensitive.
func (h *TutorHandler) ListTutorsByLanguage(c *gin.Context) {
	tutors, err := h.service.ListTutorsByLanguage(c.Request.Context(), c.Param("language"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tutors)
}

// ListMyTutors handles GET /mytutors/:email
// Runs behind TokenSessionMiddleware; the token's email must equal the
// path email.
func (h *TutorHandler) ListMyTutors(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.MessageResponse{Message: middleware.UnauthorizedMessage})
		return
	}

	email := c.Param("email")
	if identity.Email() != email {
		metrics.OwnershipDenials.Inc()
		attachError(c, errors.AccessDeniedError("token owner does not match requested email"))
		logger.Warn("Ownership check failed", zap.String("route", c.FullPath()))
		c.JSON(http.StatusForbidden, models.MessageResponse{Message: ForbiddenMessage})
		return
	}

	tutors, err := h.service.ListTutorsByEmail(c.Request.Context(), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tutors)
}

// GetTutor handles GET /tutor/:id
// Responds with null when no tutor has the id.
func (h *TutorHandler) GetTutor(c *gin.Context) {
	id, ok := bindTutorID(c)
	if !ok {
		return
	}

	tutor, err := h.service.GetTutor(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if tutor == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, tutor)
}

// CreateTutor handles POST /tutors
// The body must be a JSON object; it is stored with every field as sent.
func (h *TutorHandler) CreateTutor(c *gin.Context) {
	var req models.TutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.service.CreateTutor(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ReplaceTutor handles PUT /tutor/:id
// Sets the tutor fields from the body, creating the tutor at the id if it
// is missing.
func (h *TutorHandler) ReplaceTutor(c *gin.Context) {
	id, ok := bindTutorID(c)
	if !ok {
		return
	}

	var req models.TutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.service.ReplaceTutor(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteTutor handles DELETE /tutors/:id
func (h *TutorHandler) DeleteTutor(c *gin.Context) {
	id, ok := bindTutorID(c)
	if !ok {
		return
	}

	res, err := h.service.DeleteTutor(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
