// Package store holds the MongoDB repositories. Every method issues exactly
// one database command.
package store

import (
	"errors"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("document not found")

func insertResult(res *mongo.InsertOneResult) models.InsertResult {
	out := models.InsertResult{Acknowledged: true}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.InsertedID = id.Hex()
	}
	return out
}

func updateResult(res *mongo.UpdateResult) models.UpdateResult {
	out := models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		hex := id.Hex()
		out.UpsertedID = &hex
	}
	return out
}
