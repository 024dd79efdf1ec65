package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/langexchange/langexchange-api/internal/models"
	apperrors "github.com/langexchange/langexchange-api/pkg/errors"
	"github.com/langexchange/langexchange-api/pkg/jwt"
	"github.com/langexchange/langexchange-api/pkg/metrics"
)

const (
	// TokenCookieName is the name of the session cookie
	TokenCookieName = "token"

	// IdentityContextKey is the key used to store the decoded identity in context
	IdentityContextKey = "identity"
)

// UnauthorizedMessage is the body message of every 401 from the session gate
const UnauthorizedMessage = "UnAuthorize Access"

var (
	ErrIdentityNotFound = errors.New("identity not found in context")
	ErrInvalidIdentity  = errors.New("invalid identity type")
)

// TokenVerifier verifies a session token and returns its identity
type TokenVerifier interface {
	VerifyToken(token string) (jwt.Identity, error)
}

// TokenSessionMiddleware requires a valid token cookie. The decoded
// identity is stored in the context; otherwise the request ends with 401
// before reaching the handler.
func TokenSessionMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenCookieName)
		if err != nil || token == "" {
			metrics.TokenVerifications.WithLabelValues("missing").Inc()
			_ = c.Error(fmt.Errorf("missing session cookie: %w", apperrors.ErrUnauthorized)) //nolint:errcheck
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.MessageResponse{Message: UnauthorizedMessage})
			return
		}

		identity, err := verifier.VerifyToken(token)
		if err != nil {
			_ = c.Error(fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)) //nolint:errcheck
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.MessageResponse{Message: UnauthorizedMessage})
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

// GetIdentity extracts the identity stored by TokenSessionMiddleware
func GetIdentity(c *gin.Context) (jwt.Identity, error) {
	val, exists := c.Get(IdentityContextKey)
	if !exists {
		return nil, ErrIdentityNotFound
	}

	identity, ok := val.(jwt.Identity)
	if !ok {
		return nil, ErrInvalidIdentity
	}

	return identity, nil
}

// SetTokenCookie sets the session cookie. It is a browser-session cookie;
// the token's own expiry bounds its validity.
//
// Production serves the front end from another site over HTTPS, so the
// cookie is Secure with SameSite=None. Local development runs over plain
// HTTP and uses SameSite=Strict.
func SetTokenCookie(c *gin.Context, token string, production bool) {
	writeTokenCookie(c, token, 0, production)
}

// ClearTokenCookie expires the session cookie. Attributes must match the
// ones it was set with or browsers keep it.
func ClearTokenCookie(c *gin.Context, production bool) {
	writeTokenCookie(c, "", -1, production)
}

func writeTokenCookie(c *gin.Context, value string, maxAge int, production bool) {
	if production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(
		TokenCookieName,
		value,
		maxAge,
		"/",
		"",
		production, // Secure
		true,       // HttpOnly
	)
}
