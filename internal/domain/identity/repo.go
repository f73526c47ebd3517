package identity

import "errors"

// ErrNotFound is returned when no patient carries the requested ID.
var ErrNotFound = errors.New("patient not found")

// PatientRepository owns the patient collection and the ID counter. There is
// no delete operation; identifiers are issued once and never reused.
type PatientRepository interface {
	// Create assigns the next identifier, stores the record, and returns it.
	Create(name string, age int, gender, symptoms, admissionDate string) (*Patient, error)
	// GetByID resolves a patient fresh on each use.
	GetByID(id int) (*Patient, error)
	// List returns all patients in registration order.
	List() []*Patient
}
