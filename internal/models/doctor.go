package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is a listed practitioner. Image holds the raw uploaded bytes and is
// stored as BSON binary; JSON renders it base64-encoded.
type Doctor struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Image []byte             `bson:"image" json:"image"`
}
