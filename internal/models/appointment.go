package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is a booking made by a patient. Only email, date and payment
// are known to the API; every other field the client sends is kept as-is in
// Fields and written back at the top level of the document.
type Appointment struct {
	ID      primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Email   string                 `bson:"email" json:"email"`
	Date    string                 `bson:"date" json:"date"`
	Payment map[string]interface{} `bson:"payment,omitempty" json:"payment,omitempty"`
	Fields  map[string]interface{} `bson:",inline" json:"-"`
}

// AppointmentFromPayload builds an appointment from a decoded booking body.
// Ids are generated by the store and payment is attached later, so both are
// dropped from the payload.
func AppointmentFromPayload(payload map[string]interface{}) Appointment {
	apt := Appointment{Fields: make(map[string]interface{}, len(payload))}
	for k, v := range payload {
		switch k {
		case "_id", "payment":
		case "email":
			apt.Email, _ = v.(string)
		case "date":
			apt.Date, _ = v.(string)
		default:
			apt.Fields[k] = v
		}
	}
	return apt
}

// MarshalJSON flattens Fields next to the known keys, mirroring how the
// document is stored.
func (a Appointment) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(a.Fields)+4)
	for k, v := range a.Fields {
		out[k] = v
	}
	if !a.ID.IsZero() {
		out["_id"] = a.ID
	}
	out["email"] = a.Email
	out["date"] = a.Date
	if a.Payment != nil {
		out["payment"] = a.Payment
	}
	return json.Marshal(out)
}
