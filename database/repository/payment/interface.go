package paymentRepo

import (
	"context"
	"errors"

	"clinicportal/models"
)

// ErrBookingNotFound signals that a payment referenced a booking id that does
// not resolve to a stored booking. The whole reconciliation aborts; no
// orphaned payment record is left behind.
var ErrBookingNotFound = errors.New("payment references an unknown booking")

// ErrDuplicateTransaction signals that a payment with the same transactionId
// has already been recorded.
var ErrDuplicateTransaction = errors.New("payment with this transactionId already recorded")

// PaymentRepository records confirmed payments and reconciles them against
// their originating bookings.
type PaymentRepository interface {
	// Record inserts the payment and marks the referenced booking paid with
	// the payment's transaction reference, as one logical unit.
	Record(ctx context.Context, payment *models.Payment) (string, error)
	// GetByBookingID retrieves payments recorded against a booking.
	GetByBookingID(ctx context.Context, bookingID string) ([]models.Payment, error)
}
