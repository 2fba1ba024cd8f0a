package handlers

import (
	"context"
	"sync"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type fakePinger struct{ err error }

func (f *fakePinger) Ping(context.Context, *readpref.ReadPref) error { return f.err }

type memAppointments struct {
	mu   sync.Mutex
	docs []models.Appointment
	err  error
}

func (m *memAppointments) FindByEmailAndDate(_ context.Context, email, date string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Appointment
	for _, d := range m.docs {
		if d.Email == email && d.Date == date {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memAppointments) FindByID(_ context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, d := range m.docs {
		if d.ID == id {
			apt := d
			return &apt, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memAppointments) Insert(_ context.Context, apt models.Appointment) (models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.InsertResult{}, m.err
	}
	apt.ID = primitive.NewObjectID()
	m.docs = append(m.docs, apt)
	return models.InsertResult{Acknowledged: true, InsertedID: apt.ID.Hex()}, nil
}

func (m *memAppointments) SetPayment(_ context.Context, id primitive.ObjectID, payment map[string]interface{}) (models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.UpdateResult{}, m.err
	}
	for i := range m.docs {
		if m.docs[i].ID == id {
			m.docs[i].Payment = payment
			return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return models.UpdateResult{Acknowledged: true}, nil
}

type memDoctors struct {
	docs []models.Doctor
}

func (m *memDoctors) List(context.Context) ([]models.Doctor, error) {
	return m.docs, nil
}

func (m *memDoctors) Insert(_ context.Context, d models.Doctor) (models.InsertResult, error) {
	d.ID = primitive.NewObjectID()
	m.docs = append(m.docs, d)
	return models.InsertResult{Acknowledged: true, InsertedID: d.ID.Hex()}, nil
}

type memUsers struct {
	docs []models.User
}

func (m *memUsers) find(email string) int {
	for i := range m.docs {
		if m.docs[i].Email == email {
			return i
		}
	}
	return -1
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if i := m.find(email); i >= 0 {
		user := m.docs[i]
		return &user, nil
	}
	return nil, store.ErrNotFound
}

func (m *memUsers) Insert(_ context.Context, u models.User) (models.InsertResult, error) {
	u.ID = primitive.NewObjectID()
	m.docs = append(m.docs, u)
	return models.InsertResult{Acknowledged: true, InsertedID: u.ID.Hex()}, nil
}

func (m *memUsers) Upsert(_ context.Context, u models.User) (models.UpdateResult, error) {
	if i := m.find(u.Email); i >= 0 {
		if u.Role != "" {
			m.docs[i].Role = u.Role
		}
		if m.docs[i].Fields == nil {
			m.docs[i].Fields = map[string]interface{}{}
		}
		for k, v := range u.Fields {
			m.docs[i].Fields[k] = v
		}
		return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	u.ID = primitive.NewObjectID()
	m.docs = append(m.docs, u)
	id := u.ID.Hex()
	return models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}, nil
}

func (m *memUsers) SetRole(_ context.Context, email string, role models.Role) (models.UpdateResult, error) {
	if i := m.find(email); i >= 0 {
		m.docs[i].Role = role
		return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return models.UpdateResult{Acknowledged: true}, nil
}

type fakeIntents struct {
	secret   string
	err      error
	amounts  []int64
	currency string
}

func (f *fakeIntents) CreateIntent(_ context.Context, amount int64, currency string, _ []string) (string, error) {
	f.amounts = append(f.amounts, amount)
	f.currency = currency
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}
