package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a user's privilege level. Comparison is case-sensitive.
type Role string

// RoleAdmin is the only privileged role.
const RoleAdmin Role = "admin"

// UnmarshalBSONValue accepts any stored value. Anything but a string decodes
// as no role, so a malformed document never fails a lookup.
func (r *Role) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	s, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
	if !ok {
		*r = ""
		return nil
	}
	*r = Role(s)
	return nil
}

type User struct {
	ID     primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Email  string                 `bson:"email" json:"email"`
	Role   Role                   `bson:"role,omitempty" json:"role,omitempty"`
	Fields map[string]interface{} `bson:",inline" json:"-"` // displayName, photoURL, ...
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserFromPayload splits a profile body into known fields and extras.
func UserFromPayload(payload map[string]interface{}) User {
	user := User{Fields: make(map[string]interface{}, len(payload))}
	for k, v := range payload {
		switch k {
		case "_id":
		case "email":
			user.Email, _ = v.(string)
		case "role":
			role, _ := v.(string)
			user.Role = Role(role)
		default:
			user.Fields[k] = v
		}
	}
	return user
}
