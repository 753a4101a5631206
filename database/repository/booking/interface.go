package bookingRepo

import (
	"context"
	"errors"

	"clinicportal/models"
)

// ErrDuplicateBooking signals that the store's unique index rejected an
// insert for an (email, appointmentDate, treatment) tuple that already has a
// booking. The conflict guard checks first, but two concurrent inserts can
// both pass the check; the index is what actually holds the invariant.
var ErrDuplicateBooking = errors.New("booking already exists for this date and treatment")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Insert stores a new booking and returns its hex id.
	Insert(ctx context.Context, booking *models.Booking) (string, error)
	// GetByID retrieves a booking by its hex id; nil when absent.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByEmail retrieves all bookings made under an email address.
	GetByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// GetByDate retrieves all bookings for an appointment date.
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	// CountByTuple counts bookings matching (appointmentDate, email, treatment) exactly.
	CountByTuple(ctx context.Context, date, email, treatment string) (int64, error)
}
