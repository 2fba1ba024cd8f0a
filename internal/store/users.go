package store

import (
	"context"
	"errors"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(coll *mongo.Collection) *UserRepository {
	return &UserRepository{coll: coll}
}

// FindByEmail returns the first user with the given email. Emails are not
// unique at the database level.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Insert(ctx context.Context, user models.User) (models.InsertResult, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return models.InsertResult{}, err
	}
	return insertResult(res), nil
}

// Upsert writes the whole user with $set, keyed by email. It is a replace of
// every supplied field, not a merge contract: callers must send the full
// profile.
func (r *UserRepository) Upsert(ctx context.Context, user models.User) (models.UpdateResult, error) {
	user.ID = primitive.NilObjectID
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$set": user},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return updateResult(res), nil
}

// SetRole changes only the role field of the user with the given email.
func (r *UserRepository) SetRole(ctx context.Context, email string, role models.Role) (models.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return updateResult(res), nil
}
