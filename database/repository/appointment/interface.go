package appointmentRepo

import (
	"context"

	"clinicportal/models"
)

// AppointmentRepository defines access to the appointment-option catalog.
// The catalog is an immutable template; nothing here mutates it.
type AppointmentRepository interface {
	// GetAll retrieves the full unfiltered catalog.
	GetAll(ctx context.Context) ([]models.AppointmentOption, error)
	// GetSpecialties retrieves the {name} projection of the catalog.
	GetSpecialties(ctx context.Context) ([]models.Specialty, error)
}
