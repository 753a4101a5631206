package handlers

import (
	"errors"
	"net/http"

	"clinicportal/models"
	"clinicportal/services/booking"
	"clinicportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation and lookup.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler returns a handler bound to the booking service.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /booking. A duplicate tuple is a normal
// response with acknowledged:false, not an error status.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var candidate models.Booking
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.Create(c.Request.Context(), &candidate)
	if err != nil {
		var conflict *booking.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusOK, models.BookingResult{
				Acknowledged: false,
				Message:      conflict.Error(),
			})
			return
		}
		logger.Error("Failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBookingsHandler handles GET /bookings?email=E.
func (h *BookingHandler) GetBookingsHandler(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	bookings, err := h.Service.ByEmail(c.Request.Context(), email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch bookings", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByIDHandler handles GET /bookings/:id. An absent booking is a
// 404 rather than the legacy null body.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	id := c.Param("id")

	bkg, err := h.Service.ByID(c.Request.Context(), id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking", err.Error())
		return
	}
	if bkg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, bkg)
}
