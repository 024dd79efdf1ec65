package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/langexchange/langexchange-api/internal/services"
)

type LanguageHandler struct {
	service services.LanguageServiceInterface
}

func NewLanguageHandler(service services.LanguageServiceInterface) *LanguageHandler {
	return &LanguageHandler{service: service}
}

// ListLanguages handles GET /language
func (h *LanguageHandler) ListLanguages(c *gin.Context) {
	languages, err := h.service.ListLanguages(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, languages)
}
