package handlers

import (
	"net/http"

	"clinicportal/services/availability"
	"clinicportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the slot-inventory endpoints.
type AppointmentHandler struct {
	Availability availability.AvailabilityService
}

// NewAppointmentHandler returns a handler bound to the availability service.
func NewAppointmentHandler(svc availability.AvailabilityService) *AppointmentHandler {
	return &AppointmentHandler{Availability: svc}
}

// GetAppointmentOptionsHandler handles GET /appointmentOptions?date=D.
func (h *AppointmentHandler) GetAppointmentOptionsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	options, err := h.Availability.RemainingOptions(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to compute availability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load appointment options", err.Error())
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetSpecialtiesHandler handles GET /appointmentSpecialty.
func (h *AppointmentHandler) GetSpecialtiesHandler(c *gin.Context) {
	specialties, err := h.Availability.Specialties(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to load specialties", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load specialties", err.Error())
		return
	}
	c.JSON(http.StatusOK, specialties)
}
