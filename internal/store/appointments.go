package store

import (
	"context"
	"errors"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(coll *mongo.Collection) *AppointmentRepository {
	return &AppointmentRepository{coll: coll}
}

// FindByEmailAndDate returns every appointment matching both fields exactly,
// in natural order.
func (r *AppointmentRepository) FindByEmailAndDate(ctx context.Context, email, date string) ([]models.Appointment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email, "date": date})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	var apt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&apt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &apt, nil
}

func (r *AppointmentRepository) Insert(ctx context.Context, apt models.Appointment) (models.InsertResult, error) {
	if apt.ID.IsZero() {
		apt.ID = primitive.NewObjectID()
	}
	res, err := r.coll.InsertOne(ctx, apt)
	if err != nil {
		return models.InsertResult{}, err
	}
	return insertResult(res), nil
}

// SetPayment replaces the payment sub-document. A missing id is not an
// error: the result simply reports zero matches.
func (r *AppointmentRepository) SetPayment(ctx context.Context, id primitive.ObjectID, payment map[string]interface{}) (models.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"payment": payment}})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return updateResult(res), nil
}
