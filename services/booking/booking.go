package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "clinicportal/database/repository/booking"
	"clinicportal/models"
	"clinicportal/utils"

	"go.uber.org/zap"
)

// BookingService creates and retrieves bookings.
type BookingService interface {
	// Create inserts the candidate unless the (email, date, treatment) tuple
	// is already booked; a conflict returns *ConflictError.
	Create(ctx context.Context, candidate *models.Booking) (*models.BookingResult, error)
	// ByEmail retrieves all bookings made under an email address.
	ByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// ByID retrieves one booking; nil when absent.
	ByID(ctx context.Context, id string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService over the booking repository.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

// Create enforces the at-most-one-booking-per-tuple rule and inserts the
// candidate. The read-before-insert gives the friendly rejection in the
// common case; the store's unique index closes the window between the two
// operations, and its duplicate-key error maps to the same rejection.
func (s *DefaultBookingService) Create(ctx context.Context, candidate *models.Booking) (*models.BookingResult, error) {
	logger := utils.GetLogger()

	count, err := s.Repo.CountByTuple(ctx, candidate.AppointmentDate, candidate.Email, candidate.Treatment)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bookings: %w", err)
	}
	if count > 0 {
		logger.Debug("booking conflict",
			zap.String("email", candidate.Email),
			zap.String("date", candidate.AppointmentDate),
			zap.String("treatment", candidate.Treatment))
		return nil, NewConflictError(candidate.AppointmentDate)
	}

	// Slot availability is not re-checked here; the catalog read already
	// offered only open slots.
	candidate.Paid = false
	candidate.TransactionID = ""

	id, err := s.Repo.Insert(ctx, candidate)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return nil, NewConflictError(candidate.AppointmentDate)
		}
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	logger.Info("booking created",
		zap.String("id", id),
		zap.String("treatment", candidate.Treatment),
		zap.String("date", candidate.AppointmentDate))
	return &models.BookingResult{Acknowledged: true, InsertedID: id}, nil
}

// ByEmail retrieves all bookings made under an email address.
func (s *DefaultBookingService) ByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", email, err)
	}
	return bookings, nil
}

// ByID retrieves one booking by its hex id; nil when absent.
func (s *DefaultBookingService) ByID(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return booking, nil
}
