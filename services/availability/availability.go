package availability

import (
	"context"
	"fmt"

	appointmentRepo "clinicportal/database/repository/appointment"
	bookingRepo "clinicportal/database/repository/booking"
	"clinicportal/models"
	"clinicportal/utils"

	"go.uber.org/zap"
)

// AvailabilityService computes remaining open slots for a date.
type AvailabilityService interface {
	// RemainingOptions returns the catalog with each option's slots reduced
	// to the ones still open on the given date.
	RemainingOptions(ctx context.Context, date string) ([]models.AppointmentOption, error)
	// Specialties returns the {name} projection of the catalog.
	Specialties(ctx context.Context) ([]models.Specialty, error)
}

// DefaultAvailabilityService derives availability from the catalog and the
// date's bookings on every call; nothing is cached between requests.
type DefaultAvailabilityService struct {
	Catalog  appointmentRepo.AppointmentRepository
	Bookings bookingRepo.BookingRepository
}

// RemainingOptions fetches the full catalog and the date's bookings, then
// filters out every slot already taken for each treatment.
func (s *DefaultAvailabilityService) RemainingOptions(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	logger := utils.GetLogger()

	options, err := s.Catalog.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment catalog: %w", err)
	}

	booked, err := s.Bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	remaining := FilterBookedSlots(date, options, booked)
	logger.Debug("computed availability",
		zap.String("date", date),
		zap.Int("options", len(remaining)),
		zap.Int("bookings", len(booked)))
	return remaining, nil
}

// FilterBookedSlots removes every booked slot from its treatment's template
// slot list, preserving template order. Catalog documents are never mutated;
// each returned option carries a fresh slot slice. Bookings for other dates
// or for treatments not in the catalog are ignored, and a slot booked twice
// is removed only once.
func FilterBookedSlots(date string, options []models.AppointmentOption, bookings []models.Booking) []models.AppointmentOption {
	bookedByTreatment := make(map[string]map[string]struct{})
	for _, b := range bookings {
		if b.AppointmentDate != date {
			continue
		}
		slots, ok := bookedByTreatment[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			bookedByTreatment[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]models.AppointmentOption, 0, len(options))
	for _, opt := range options {
		taken := bookedByTreatment[opt.Name]
		remaining := make([]string, 0, len(opt.Slots))
		for _, slot := range opt.Slots {
			if _, booked := taken[slot]; !booked {
				remaining = append(remaining, slot)
			}
		}
		opt.Slots = remaining
		out = append(out, opt)
	}
	return out
}

// Specialties returns the treatment-name projection of the catalog.
func (s *DefaultAvailabilityService) Specialties(ctx context.Context) ([]models.Specialty, error) {
	specialties, err := s.Catalog.GetSpecialties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load specialties: %w", err)
	}
	return specialties, nil
}
