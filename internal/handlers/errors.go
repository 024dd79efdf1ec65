package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/langexchange/langexchange-api/internal/middleware"
	"github.com/langexchange/langexchange-api/pkg/errors"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin context
// so the observability middleware can include the reason in the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondErrorWithDetails sends an error response with an additional details field.
func respondErrorWithDetails(c *gin.Context, status int, message string, details any, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message, "details": details})
}

// respondServiceError maps a service error onto a status code. Anything
// unclassified, including every store failure, is a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errors.ErrInvalidID):
		respondError(c, http.StatusBadRequest, "Invalid ID", err)
	case errors.Is(err, errors.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, "Validation failed", err)
	default:
		respondError(c, http.StatusInternalServerError, middleware.InternalErrorMessage, err)
	}
}

// bindTutorID reads the document id from the path. A malformed id is
// answered with 400 before the service runs.
func bindTutorID(c *gin.Context) (string, bool) {
	var param tutorIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid ID", ParseValidationErrors(err),
			errors.InvalidIDError(c.Param("id")))
		return "", false
	}
	return param.ID, true
}

// respondBindError reports a request body that failed to decode or validate
func respondBindError(c *gin.Context, err error) {
	if details := ParseValidationErrors(err); len(details) > 0 {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", details, err)
		return
	}
	respondError(c, http.StatusBadRequest, "Invalid request body", err)
}
