package handlers

import (
	"errors"
	"net/http"

	paymentRepo "clinicportal/database/repository/payment"
	"clinicportal/models"
	"clinicportal/services/payment"
	"clinicportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves intent creation and payment recording.
type PaymentHandler struct {
	Service payment.PaymentService
}

// NewPaymentHandler returns a handler bound to the payment service.
func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreatePaymentIntentHandler handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		logger.Error("Payment intent creation failed", zap.Float64("price", req.Price), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Payment processor error", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordPaymentHandler handles POST /payments.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var pay models.Payment
	if err := c.ShouldBindJSON(&pay); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	insertedID, err := h.Service.Record(c.Request.Context(), &pay)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, paymentRepo.ErrDuplicateTransaction) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to record payment", zap.String("bookingId", pay.BookingID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": insertedID})
}
