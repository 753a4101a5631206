package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records one confirmed processor charge. Each payment reconciles
// exactly one booking; the booking document survives independently.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookingID     string             `bson:"bookingId" json:"bookingId"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// PaymentIntentRequest carries the booking price a client wants to charge.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// PaymentIntentResponse returns the processor's client secret for the
// created intent.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
