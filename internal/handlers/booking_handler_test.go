package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/langexchange/langexchange-api/internal/models"
	apperrors "github.com/langexchange/langexchange-api/pkg/errors"
)

func setupBookingRouter(service *MockBookingService) *gin.Engine {
	handler := NewBookingHandler(service)
	router := gin.New()
	router.GET("/bookTutor", handler.ListBookings)
	router.GET("/bookTutor/:email", handler.ListBookingsByEmail)
	router.POST("/bookTutor", handler.CreateBooking)
	return router
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	service := new(MockBookingService)
	expected := &models.InsertResult{Acknowledged: true, InsertedID: "64b7f0c2a1b2c3d4e5f60799"}
	service.On("CreateBooking", mock.Anything, models.BookingRequest{
		"email":   "ben@x.com",
		"tutorId": "64b7f0c2a1b2c3d4e5f60718",
		"slot":    map[string]interface{}{"day": "mon"},
	}).Return(expected, nil).Once()
	router := setupBookingRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookTutor",
		strings.NewReader(`{"email":"ben@x.com","tutorId":"64b7f0c2a1b2c3d4e5f60718","slot":{"day":"mon"}}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"acknowledged":true,"insertedId":"64b7f0c2a1b2c3d4e5f60799"}`, w.Body.String())
	service.AssertExpectations(t)
}

func TestBookingHandler_CreateBooking_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"not an object", `[1,2]`, nil, http.StatusBadRequest},
		{"missing email", `{"tutorId":"x"}`, apperrors.InvalidInputError("email", "email is required"), http.StatusBadRequest},
		{"store failure", `{"email":"ben@x.com"}`, apperrors.StoreError("booked", "insert_one", errors.New("timeout")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockBookingService)
			if tt.serviceErr != nil {
				service.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, tt.serviceErr).Once()
			}
			router := setupBookingRouter(service)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/bookTutor", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			service.AssertExpectations(t)
		})
	}
}

func TestBookingHandler_Lists(t *testing.T) {
	service := new(MockBookingService)
	service.On("ListBookings", mock.Anything).Return([]models.Document{{"email": "ben@x.com"}}, nil).Once()
	service.On("ListBookingsByEmail", mock.Anything, "eve@x.com").Return([]models.Document{}, nil).Once()
	router := setupBookingRouter(service)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookTutor", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"email":"ben@x.com"}]`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookTutor/eve@x.com", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	service.AssertExpectations(t)
}
