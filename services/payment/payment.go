package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	paymentRepo "clinicportal/database/repository/payment"
	"clinicportal/models"
	"clinicportal/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService creates processor payment intents and reconciles confirmed
// payments against their bookings.
type PaymentService interface {
	// CreateIntent requests a card payment intent for the given price and
	// returns the processor's client secret.
	CreateIntent(ctx context.Context, price float64) (*models.PaymentIntentResponse, error)
	// Record stores the confirmed payment and marks its booking paid,
	// returning the new payment record's hex id.
	Record(ctx context.Context, payment *models.Payment) (string, error)
}

// IntentCreator requests a payment intent from the processor. Declared as a
// function type so tests can stand in for the Stripe API.
type IntentCreator func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)

// DefaultPaymentService implements PaymentService against Stripe and the
// payment repository.
type DefaultPaymentService struct {
	Repo     paymentRepo.PaymentRepository
	Currency string
	IntentFn IntentCreator
}

// NewDefaultPaymentService wires the service to the real Stripe client.
func NewDefaultPaymentService(repo paymentRepo.PaymentRepository, currency string) *DefaultPaymentService {
	return &DefaultPaymentService{
		Repo:     repo,
		Currency: currency,
		IntentFn: paymentintent.New,
	}
}

// MinorUnits converts a price to the processor's integer minor-unit amount.
// Rounded, not truncated: 19.99 × 100 lands just under 1999 in float64 and
// plain conversion would undercharge a cent.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent requests a card payment intent for the booking price. No local
// state changes; processor failures propagate to the caller.
func (s *DefaultPaymentService) CreateIntent(ctx context.Context, price float64) (*models.PaymentIntentResponse, error) {
	if price <= 0 {
		return nil, fmt.Errorf("invalid payment amount: %.2f", price)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(s.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.New().String())

	intent, err := s.IntentFn(params)
	if err != nil {
		return nil, fmt.Errorf("payment processor rejected intent: %w", err)
	}

	utils.GetLogger().Info("payment intent created",
		zap.Int64("amount", MinorUnits(price)),
		zap.String("currency", s.Currency))
	return &models.PaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

// Record stores the confirmed payment and marks the referenced booking paid
// with the transaction reference. An unknown bookingId is a hard error; a
// replayed transactionId is rejected rather than logged twice.
func (s *DefaultPaymentService) Record(ctx context.Context, payment *models.Payment) (string, error) {
	logger := utils.GetLogger()

	if payment.BookingID == "" {
		return "", errors.New("payment is missing its booking reference")
	}
	if payment.TransactionID == "" {
		return "", errors.New("payment is missing its transaction reference")
	}

	id, err := s.Repo.Record(ctx, payment)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrBookingNotFound) || errors.Is(err, paymentRepo.ErrDuplicateTransaction) {
			return "", err
		}
		return "", fmt.Errorf("failed to record payment: %w", err)
	}

	logger.Info("payment recorded",
		zap.String("paymentId", id),
		zap.String("bookingId", payment.BookingID),
		zap.String("transactionId", payment.TransactionID))
	return id, nil
}
