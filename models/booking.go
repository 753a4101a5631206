package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking represents a patient's reservation of one slot of one treatment on
// one date. At most one booking may exist per (email, appointmentDate,
// treatment) tuple.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"` // date key, matched by equality only
	Treatment       string             `bson:"treatment" json:"treatment"`             // AppointmentOption.Name
	Patient         string             `bson:"patient,omitempty" json:"patient,omitempty"`
	Slot            string             `bson:"slot" json:"slot"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	Paid            bool               `bson:"paid" json:"paid"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// BookingResult mirrors the store acknowledgment returned to booking clients.
// A conflict rejection reuses the same shape with Acknowledged=false and a
// human-readable message.
type BookingResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}
