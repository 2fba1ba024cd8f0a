package services

import (
	"context"
	"fmt"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

type DoctorStore interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Insert(ctx context.Context, doctor models.Doctor) (models.InsertResult, error)
}

type DoctorService struct {
	store DoctorStore
}

func NewDoctorService(s DoctorStore) *DoctorService {
	return &DoctorService{store: s}
}

func (s *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	if doctors == nil {
		doctors = make([]models.Doctor, 0)
	}
	return doctors, nil
}

// Create stores the uploaded image bytes unchanged.
func (s *DoctorService) Create(ctx context.Context, name, email string, image []byte) (models.InsertResult, error) {
	if name == "" || email == "" || len(image) == 0 {
		return models.InsertResult{}, fmt.Errorf("%w: name, email and image are required", ErrInvalidInput)
	}
	res, err := s.store.Insert(ctx, models.Doctor{Name: name, Email: email, Image: image})
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("create doctor: %w", err)
	}
	return res, nil
}
