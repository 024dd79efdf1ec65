package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/langexchange/langexchange-api/internal/middleware"
	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/internal/services"
	"github.com/langexchange/langexchange-api/pkg/jwt"
)

// AuthHandler handles token issuance and logout
type AuthHandler struct {
	service services.AuthServiceInterface
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// IssueToken handles POST /jwt
// Signs the posted identity into a token and sets it as the session cookie.
// The identity is not checked against any credential store.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var identity jwt.Identity
	if err := c.ShouldBindJSON(&identity); err != nil {
		respondError(c, http.StatusBadRequest, "Identity payload must be a JSON object", err)
		return
	}
	if identity == nil {
		identity = jwt.Identity{}
	}

	token, err := h.service.IssueToken(identity)
	if err != nil {
		respondError(c, http.StatusInternalServerError, middleware.InternalErrorMessage, err)
		return
	}

	middleware.SetTokenCookie(c, token, h.service.GetCookieSecure())
	c.JSON(http.StatusOK, models.SessionResponse{Success: true})
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearTokenCookie(c, h.service.GetCookieSecure())
	c.JSON(http.StatusOK, models.SessionResponse{Success: true})
}
