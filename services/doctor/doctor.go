package doctor

import (
	"context"
	"errors"
	"fmt"

	doctorRepo "clinicportal/database/repository/doctor"
	"clinicportal/models"
	"clinicportal/utils"

	"go.uber.org/zap"
)

// DoctorService manages doctor profiles.
type DoctorService interface {
	// Create stores a new doctor profile with its image bytes and returns
	// the new hex id.
	Create(ctx context.Context, doctor *models.Doctor) (string, error)
	// GetAll retrieves all doctor profiles.
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// Delete removes a doctor profile by hex id.
	Delete(ctx context.Context, id string) error
}

// DefaultDoctorService implements DoctorService over the doctor repository.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

// Create validates and stores the profile. Image bytes pass through
// untouched; the store keeps them verbatim.
func (s *DefaultDoctorService) Create(ctx context.Context, doctor *models.Doctor) (string, error) {
	if doctor.Name == "" || doctor.Email == "" || doctor.Specialty == "" {
		return "", errors.New("doctor name, email and specialty are required")
	}

	id, err := s.Repo.Insert(ctx, doctor)
	if err != nil {
		return "", fmt.Errorf("failed to create doctor: %w", err)
	}

	utils.GetLogger().Info("doctor added",
		zap.String("id", id),
		zap.String("specialty", doctor.Specialty),
		zap.Int("imageBytes", len(doctor.Image)))
	return id, nil
}

// GetAll retrieves all doctor profiles.
func (s *DefaultDoctorService) GetAll(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

// Delete removes a doctor profile.
func (s *DefaultDoctorService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete doctor %s: %w", id, err)
	}
	return nil
}
