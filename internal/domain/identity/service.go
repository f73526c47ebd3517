package identity

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/clinic/clinic/internal/domain/billing"
)

// Service is the record half of the directory's mutation authority: every
// change to a patient or its bill goes through here.
type Service struct {
	patients PatientRepository
	log      zerolog.Logger
}

func NewService(patients PatientRepository, logger zerolog.Logger) *Service {
	return &Service{patients: patients, log: logger}
}

// Register stores a new patient and returns the assigned identifier.
func (s *Service) Register(name string, age int, gender, symptoms, admissionDate string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("name is required")
	}
	if age <= 0 {
		return 0, fmt.Errorf("age must be positive, got %d", age)
	}
	if gender == "" {
		return 0, fmt.Errorf("gender is required")
	}
	if symptoms == "" {
		return 0, fmt.Errorf("symptoms are required")
	}
	if admissionDate == "" {
		return 0, fmt.Errorf("admission date is required")
	}
	p, err := s.patients.Create(name, age, gender, symptoms, admissionDate)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("patient_id", p.ID).Str("name", name).Msg("patient registered")
	return p.ID, nil
}

// Get resolves a patient by identifier.
func (s *Service) Get(id int) (*Patient, error) {
	return s.patients.GetByID(id)
}

// BriefEntry is one row of the brief patient listing.
type BriefEntry struct {
	ID   int
	Name string
}

// ListBrief returns id and name for every patient in registration order.
func (s *Service) ListBrief() []BriefEntry {
	patients := s.patients.List()
	out := make([]BriefEntry, 0, len(patients))
	for _, p := range patients {
		out = append(out, BriefEntry{ID: p.ID, Name: p.Name})
	}
	return out
}

// AddDiagnosis appends diagnostic text to a patient record.
func (s *Service) AddDiagnosis(id int, text string) error {
	p, err := s.patients.GetByID(id)
	if err != nil {
		return err
	}
	p.AddDiagnosis(text)
	s.log.Info().Int("patient_id", id).Msg("diagnosis added")
	return nil
}

// AddMedicalNote appends a medical note to a patient record.
func (s *Service) AddMedicalNote(id int, text string) error {
	p, err := s.patients.GetByID(id)
	if err != nil {
		return err
	}
	p.AddMedicalNote(text)
	s.log.Info().Int("patient_id", id).Msg("medical note added")
	return nil
}

// AddPrescription appends prescription text to a patient record.
func (s *Service) AddPrescription(id int, text string) error {
	p, err := s.patients.GetByID(id)
	if err != nil {
		return err
	}
	p.AddPrescription(text)
	s.log.Info().Int("patient_id", id).Msg("prescription added")
	return nil
}

// AddCharge records a charge on the patient's bill.
func (s *Service) AddCharge(id int, description string, amount decimal.Decimal) error {
	p, err := s.patients.GetByID(id)
	if err != nil {
		return err
	}
	p.Bill().AddCharge(description, amount)
	s.log.Info().Int("patient_id", id).Str("amount", amount.String()).Msg("charge added")
	return nil
}

// AddPayment records a payment on the patient's bill.
func (s *Service) AddPayment(id int, method string, amount decimal.Decimal) error {
	p, err := s.patients.GetByID(id)
	if err != nil {
		return err
	}
	p.Bill().AddPayment(method, amount)
	s.log.Info().Int("patient_id", id).Str("amount", amount.String()).Msg("payment recorded")
	return nil
}

// SetBillStatus force-sets the settlement status on the patient's bill.
func (s *Service) SetBillStatus(id int, status billing.Status) error {
	if !status.Valid() {
		return fmt.Errorf("invalid bill status: %s", status)
	}
	p, err := s.patients.GetByID(id)
	if err != nil {
		return err
	}
	p.Bill().SetStatus(status)
	s.log.Info().Int("patient_id", id).Str("status", string(status)).Msg("bill status overridden")
	return nil
}

// BillSummary snapshots the patient's bill.
func (s *Service) BillSummary(id int) (billing.Summary, error) {
	p, err := s.patients.GetByID(id)
	if err != nil {
		return billing.Summary{}, err
	}
	return p.Bill().Summary(), nil
}
