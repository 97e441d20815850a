package models

import "time"

// Appointment represents a confirmed booking for one calendar slot.
// SlotID is the canonical "YYYY-MM-DD-HH:MM" identity and is unique per
// appointment; the store enforces at most one appointment per slot.
type Appointment struct {
	SlotID      string    `bson:"slot_id" json:"slot_id"`
	Date        string    `bson:"date" json:"date"` // "YYYY-MM-DD", facility-local
	Time        string    `bson:"time" json:"time"` // "HH:MM", facility-local
	PatientName string    `bson:"patient_name" json:"patient_name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
