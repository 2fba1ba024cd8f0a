package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStore interface {
	FindByEmailAndDate(ctx context.Context, email, date string) ([]models.Appointment, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	Insert(ctx context.Context, apt models.Appointment) (models.InsertResult, error)
	SetPayment(ctx context.Context, id primitive.ObjectID, payment map[string]interface{}) (models.UpdateResult, error)
}

type AppointmentService struct {
	store AppointmentStore
}

func NewAppointmentService(s AppointmentStore) *AppointmentService {
	return &AppointmentService{store: s}
}

func (s *AppointmentService) ListByEmailAndDate(ctx context.Context, email, date string) ([]models.Appointment, error) {
	appointments, err := s.store.FindByEmailAndDate(ctx, email, date)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	if appointments == nil {
		appointments = make([]models.Appointment, 0)
	}
	return appointments, nil
}

// GetByID treats a malformed id the same as an unknown one.
func (s *AppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	apt, err := s.store.FindByID(ctx, oid)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return apt, nil
}

func (s *AppointmentService) Create(ctx context.Context, payload map[string]interface{}) (models.InsertResult, error) {
	apt := models.AppointmentFromPayload(payload)
	if apt.Email == "" || apt.Date == "" {
		return models.InsertResult{}, fmt.Errorf("%w: email and date are required", ErrInvalidInput)
	}
	res, err := s.store.Insert(ctx, apt)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("create appointment: %w", err)
	}
	return res, nil
}

// AttachPayment overwrites the payment sub-document. Unknown ids yield a
// zero-count result, never an insert. A malformed id cannot match anything
// and is reported the same way.
func (s *AppointmentService) AttachPayment(ctx context.Context, id string, payment map[string]interface{}) (models.UpdateResult, error) {
	if payment == nil {
		return models.UpdateResult{}, fmt.Errorf("%w: payment must be an object", ErrInvalidInput)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.UpdateResult{Acknowledged: true}, nil
	}
	res, err := s.store.SetPayment(ctx, oid, payment)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("attach payment: %w", err)
	}
	return res, nil
}
