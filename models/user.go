package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values stored on a user document.
const (
	RoleNone  = ""
	RoleAdmin = "admin"
)

// User represents a portal account. Role defaults to none and is promoted or
// demoted only through the explicit admin operations.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
