package session

import (
	"github.com/clinic/clinic/internal/domain/billing"
	"github.com/clinic/clinic/internal/domain/identity"
)

func (d *Dispatcher) printAccounts() {
	d.con.Printf("---- Registered Employees ----\n")
	for _, a := range d.dir.Accounts.List() {
		d.con.Printf("Username: %s | Role: %s\n", a.Username, a.Role.Display())
	}
}

func (d *Dispatcher) printPatientsBrief() {
	entries := d.dir.Patients.ListBrief()
	d.con.Printf("---- Patients (brief) ----\n")
	if len(entries) == 0 {
		d.con.Printf("No patients registered.\n")
		return
	}
	for _, e := range entries {
		d.con.Printf("ID: %d | Name: %s\n", e.ID, e.Name)
	}
}

func (d *Dispatcher) printBasicView(v identity.BasicView) {
	d.con.Printf("---- Patient Details ----\n")
	d.con.Printf("ID: %d\n", v.ID)
	d.con.Printf("Name: %s\n", v.Name)
	d.con.Printf("Age: %d\n", v.Age)
	d.con.Printf("Gender: %s\n", v.Gender)
	d.con.Printf("Symptoms: %s\n", v.Symptoms)
	d.con.Printf("Date of admission: %s\n", v.AdmissionDate)
}

func (d *Dispatcher) printFullView(v identity.FullView) {
	d.printBasicView(v.BasicView)
	d.printEntries("Diagnoses", v.Diagnoses)
	d.printEntries("Medical notes", v.MedicalNotes)
	d.printEntries("Prescriptions", v.Prescriptions)
	d.printBillSummary(v.Bill)
}

func (d *Dispatcher) printEntries(heading string, entries []string) {
	d.con.Printf("%s:\n", heading)
	if len(entries) == 0 {
		d.con.Printf("  (none)\n")
		return
	}
	for _, e := range entries {
		d.con.Printf("  - %s\n", e)
	}
}

func (d *Dispatcher) printBillSummary(s billing.Summary) {
	d.con.Printf("---- Bill Summary ----\n")
	d.con.Printf("Charges:\n")
	if len(s.Charges) == 0 {
		d.con.Printf("  (none)\n")
	}
	for _, c := range s.Charges {
		d.con.Printf("  - %s: $%s\n", c.Description, c.Amount.StringFixed(2))
	}
	d.con.Printf("Payments:\n")
	if len(s.Payments) == 0 {
		d.con.Printf("  (none)\n")
	}
	for _, p := range s.Payments {
		d.con.Printf("  - %s: $%s\n", p.Method, p.Amount.StringFixed(2))
	}
	d.con.Printf("Total charges: $%s\n", s.TotalCharges.StringFixed(2))
	d.con.Printf("Total payments: $%s\n", s.TotalPayments.StringFixed(2))
	d.con.Printf("Balance due: $%s\n", s.Balance.StringFixed(2))
	d.con.Printf("Status: %s\n", s.Status.Label())
}
