package store

import (
	"context"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorRepository struct {
	coll *mongo.Collection
}

func NewDoctorRepository(coll *mongo.Collection) *DoctorRepository {
	return &DoctorRepository{coll: coll}
}

func (r *DoctorRepository) List(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *DoctorRepository) Insert(ctx context.Context, doctor models.Doctor) (models.InsertResult, error) {
	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	res, err := r.coll.InsertOne(ctx, doctor)
	if err != nil {
		return models.InsertResult{}, err
	}
	return insertResult(res), nil
}
