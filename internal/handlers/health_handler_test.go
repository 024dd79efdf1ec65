package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/langexchange/langexchange-api/internal/models"
)

func TestHealthHandler_Home(t *testing.T) {
	handler := NewHealthHandler(stubPinger{})
	router := gin.New()
	router.GET("/", handler.Home)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Language Exchange server is running", w.Body.String())
}

func TestHealthHandler_Healthcheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{"healthy", nil, http.StatusOK, `{"status":"healthy"}`},
		{"database down", errors.New("server selection timeout"), http.StatusServiceUnavailable,
			`{"status":"unavailable","reason":"database unreachable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(stubPinger{err: tt.pingErr})
			router := gin.New()
			router.GET("/healthcheck", handler.Healthcheck)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthcheck", http.NoBody))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "no-cache, no-store, max-age=0, must-revalidate", w.Header().Get("Cache-Control"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestLanguageHandler_ListLanguages(t *testing.T) {
	service := new(MockLanguageService)
	service.On("ListLanguages", mock.Anything).
		Return([]models.Document{{"language": "Spanish", "flag": "es"}}, nil).Once()

	handler := NewLanguageHandler(service)
	router := gin.New()
	router.GET("/language", handler.ListLanguages)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/language", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"language":"Spanish","flag":"es"}]`, w.Body.String())
	service.AssertExpectations(t)
}
