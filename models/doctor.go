package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is a clinic doctor profile. Image holds the uploaded picture bytes
// verbatim; the document store persists them as a bson binary without
// re-encoding.
type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Specialty string             `bson:"specialty" json:"specialty"`
	Image     []byte             `bson:"image,omitempty" json:"image,omitempty"`
}
