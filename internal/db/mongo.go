package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Appointments *mongo.Collection
	Users        *mongo.Collection
	Doctors      *mongo.Collection
}

// Connect opens the process-wide client. Embedded documents decode as
// bson.M so free-form fields render as JSON objects.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	return client, NewCollections(client.Database(dbName)), nil
}

func NewCollections(db *mongo.Database) *Collections {
	return &Collections{
		Appointments: db.Collection("appointments"),
		Users:        db.Collection("users"),
		Doctors:      db.Collection("doctors"),
	}
}

// EnsureIndexes creates the lookup indexes. None of them are unique: email
// is a business key but duplicates are tolerated.
func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := cols.Appointments.Indexes().CreateOne(indexTimeout, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "date", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = cols.Users.Indexes().CreateOne(indexTimeout, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = cols.Doctors.Indexes().CreateOne(indexTimeout, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}
