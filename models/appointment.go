package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is a treatment's template daily schedule. The stored
// document is immutable; Slots is rewritten per response with the remaining
// open slots for the requested date.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Slots []string           `bson:"slots" json:"slots"`
}

// Specialty is the {name} projection of the catalog.
type Specialty struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
