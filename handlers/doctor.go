package handlers

import (
	"io"
	"net/http"

	"clinicportal/models"
	"clinicportal/services/doctor"
	"clinicportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxDoctorImageBytes caps the accepted upload size.
const maxDoctorImageBytes = 8 << 20

// DoctorHandler serves the doctor profile endpoints.
type DoctorHandler struct {
	Service doctor.DoctorService
}

// NewDoctorHandler returns a handler bound to the doctor service.
func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// CreateDoctorHandler handles POST /doctors. The profile fields arrive as
// multipart form values with the image as a file part; the image bytes are
// stored exactly as uploaded.
func (h *DoctorHandler) CreateDoctorHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doc := models.Doctor{
		Name:      c.PostForm("name"),
		Email:     c.PostForm("email"),
		Specialty: c.PostForm("specialty"),
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxDoctorImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds the allowed size"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded image", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read image", err.Error())
		return
	}
	defer file.Close()

	doc.Image, err = io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded image", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read image", err.Error())
		return
	}

	id, err := h.Service.Create(c.Request.Context(), &doc)
	if err != nil {
		logger.Error("Failed to create doctor", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

// GetDoctorsHandler handles GET /doctors.
func (h *DoctorHandler) GetDoctorsHandler(c *gin.Context) {
	doctors, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list doctors", err.Error())
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	c.JSON(http.StatusOK, doctors)
}

// DeleteDoctorHandler handles DELETE /doctors/:id.
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Failed to delete doctor", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}
