package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/internal/services"
)

type BookingHandler struct {
	service services.BookingServiceInterface
}

func NewBookingHandler(service services.BookingServiceInterface) *BookingHandler {
	return &BookingHandler{service: service}
}

// ListBookings handles GET /bookTutor
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListBookingsByEmail handles GET /bookTutor/:email
func (h *BookingHandler) ListBookingsByEmail(c *gin.Context) {
	bookings, err := h.service.ListBookingsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking handles POST /bookTutor
// The payload is stored as sent.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req == nil {
		req = models.BookingRequest{}
	}

	res, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
