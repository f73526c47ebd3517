package identity

import (
	"github.com/clinic/clinic/internal/domain/billing"
)

// Patient is one clinic record: demographics fixed at registration, clinical
// annotations appended over time, and exactly one owned bill with the same
// lifetime. The numeric ID is assigned by the repository, monotonically
// increasing and never reused.
type Patient struct {
	ID            int
	Name          string
	Age           int
	Gender        string
	Symptoms      string
	AdmissionDate string

	diagnoses     []string
	medicalNotes  []string
	prescriptions []string
	bill          *billing.Bill
}

func NewPatient(id int, name string, age int, gender, symptoms, admissionDate string) *Patient {
	return &Patient{
		ID:            id,
		Name:          name,
		Age:           age,
		Gender:        gender,
		Symptoms:      symptoms,
		AdmissionDate: admissionDate,
		bill:          billing.NewBill(),
	}
}

// AddDiagnosis appends a diagnosis entry. Empty text is ignored.
func (p *Patient) AddDiagnosis(text string) {
	if text == "" {
		return
	}
	p.diagnoses = append(p.diagnoses, text)
}

// AddMedicalNote appends a medical note. Empty text is ignored.
func (p *Patient) AddMedicalNote(text string) {
	if text == "" {
		return
	}
	p.medicalNotes = append(p.medicalNotes, text)
}

// AddPrescription appends a prescription entry. Dispensed medication is
// recorded through the same sequence. Empty text is ignored.
func (p *Patient) AddPrescription(text string) {
	if text == "" {
		return
	}
	p.prescriptions = append(p.prescriptions, text)
}

// Bill returns the patient's owned bill for mutation or read.
func (p *Patient) Bill() *billing.Bill {
	return p.bill
}

// BasicView is the demographic snapshot shown to nursing staff.
type BasicView struct {
	ID            int
	Name          string
	Age           int
	Gender        string
	Symptoms      string
	AdmissionDate string
}

// FullView is the complete record snapshot including clinical entries and the
// bill summary.
type FullView struct {
	BasicView
	Diagnoses     []string
	MedicalNotes  []string
	Prescriptions []string
	Bill          billing.Summary
}

// Basic snapshots the demographic fields.
func (p *Patient) Basic() BasicView {
	return BasicView{
		ID:            p.ID,
		Name:          p.Name,
		Age:           p.Age,
		Gender:        p.Gender,
		Symptoms:      p.Symptoms,
		AdmissionDate: p.AdmissionDate,
	}
}

// Full snapshots the whole record. The returned slices are copies.
func (p *Patient) Full() FullView {
	diagnoses := make([]string, len(p.diagnoses))
	copy(diagnoses, p.diagnoses)
	notes := make([]string, len(p.medicalNotes))
	copy(notes, p.medicalNotes)
	prescriptions := make([]string, len(p.prescriptions))
	copy(prescriptions, p.prescriptions)
	return FullView{
		BasicView:     p.Basic(),
		Diagnoses:     diagnoses,
		MedicalNotes:  notes,
		Prescriptions: prescriptions,
		Bill:          p.bill.Summary(),
	}
}
