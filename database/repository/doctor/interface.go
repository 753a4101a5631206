package doctorRepo

import (
	"context"

	"clinicportal/models"
)

// DoctorRepository defines methods for doctor profile data access.
type DoctorRepository interface {
	// Insert stores a new doctor profile, image bytes included, and returns
	// its hex id.
	Insert(ctx context.Context, doctor *models.Doctor) (string, error)
	// GetAll retrieves all doctor profiles.
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// Delete removes a doctor profile by its hex id.
	Delete(ctx context.Context, id string) error
}
