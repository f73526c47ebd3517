package session

import (
	"errors"

	"github.com/clinic/clinic/internal/domain/admin"
	"github.com/clinic/clinic/internal/domain/billing"
	"github.com/clinic/clinic/internal/platform/auth"
)

// creatableRoles is the role selection offered when registering an employee,
// in menu order.
var creatableRoles = []auth.Role{
	auth.RoleDoctor, auth.RoleNurse, auth.RolePharmacist, auth.RoleAccounts, auth.RoleAdmin,
}

func (d *Dispatcher) createAccount() error {
	username, err := d.con.ReadNonEmptyLine("Enter username for employee: ")
	if err != nil {
		return err
	}
	if d.dir.Accounts.UsernameExists(username) {
		d.con.Printf("Username already exists.\n")
		return nil
	}

	d.con.Printf("Select role:\n")
	for i, r := range creatableRoles {
		d.con.Printf("%d. %s\n", i+1, r.Display())
	}
	choice, err := d.con.ReadIntInRange("Choose role: ", 1, len(creatableRoles))
	if err != nil {
		return err
	}

	password, err := d.con.ReadNonEmptyLine("Set password for employee: ")
	if err != nil {
		return err
	}

	a, createErr := d.dir.Accounts.Create(username, password, creatableRoles[choice-1])
	if createErr != nil {
		d.con.Printf("Could not register employee: %v\n", createErr)
		return nil
	}
	d.con.Printf("Employee registered: %s (%s)\n", a.Username, a.Role.Display())
	return nil
}

func (d *Dispatcher) deleteAccount(acct *admin.Account) error {
	d.printAccounts()
	target, err := d.con.ReadNonEmptyLine("Enter username to delete (or type 'back' to cancel): ")
	if err != nil {
		return err
	}
	if target == "back" {
		return nil
	}
	if !d.dir.Accounts.UsernameExists(target) {
		d.con.Printf("No such user.\n")
		return nil
	}
	// Self-deletion is the session's rule, not the directory's.
	if target == acct.Username {
		d.con.Printf("You cannot delete your own account here.\n")
		return nil
	}

	switch delErr := d.dir.Accounts.Delete(target); {
	case errors.Is(delErr, admin.ErrLastAdmin):
		d.con.Printf("Cannot delete the last Admin account.\n")
	case delErr != nil:
		d.con.Printf("Failed to delete user.\n")
	default:
		d.con.Printf("Deleted user: %s\n", target)
	}
	return nil
}

func (d *Dispatcher) changePassword(acct *admin.Account) error {
	newPassword, err := d.con.ReadNonEmptyLine("Enter new password: ")
	if err != nil {
		return err
	}
	if chErr := d.dir.Accounts.ChangePassword(acct.Username, newPassword); chErr != nil {
		d.con.Printf("Could not change password: %v\n", chErr)
		return nil
	}
	d.con.Printf("Password updated.\n")
	return nil
}

func (d *Dispatcher) registerPatient() error {
	name, err := d.con.ReadNonEmptyLine("Full name: ")
	if err != nil {
		return err
	}
	age, err := d.con.ReadIntInRange("Age: ", 1, 150)
	if err != nil {
		return err
	}
	gender, err := d.con.ReadNonEmptyLine("Gender: ")
	if err != nil {
		return err
	}
	symptoms, err := d.con.ReadNonEmptyLine("Symptoms: ")
	if err != nil {
		return err
	}
	date, err := d.con.ReadNonEmptyLine("Date of admission (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	id, regErr := d.dir.Patients.Register(name, age, gender, symptoms, date)
	if regErr != nil {
		d.con.Printf("Could not register patient: %v\n", regErr)
		return nil
	}
	d.con.Printf("Patient registered with ID: %d\n", id)
	return nil
}

// promptPatientID asks for a patient ID and verifies it resolves. The second
// return is true when the handler should stop (cancelled or not found).
func (d *Dispatcher) promptPatientID(cancelable bool) (int, bool, error) {
	min, prompt := 1, "Enter patient ID: "
	if cancelable {
		min, prompt = 0, "Enter patient ID (0 to cancel): "
	}
	id, err := d.con.ReadIntInRange(prompt, min, d.maxPatientID)
	if err != nil {
		return 0, false, err
	}
	if cancelable && id == 0 {
		return 0, true, nil
	}
	if _, getErr := d.dir.Patients.Get(id); getErr != nil {
		d.con.Printf("Patient not found.\n")
		return 0, true, nil
	}
	return id, false, nil
}

func (d *Dispatcher) viewPatientBasic() error {
	d.printPatientsBrief()
	id, done, err := d.promptPatientID(true)
	if err != nil || done {
		return err
	}
	p, getErr := d.dir.Patients.Get(id)
	if getErr != nil {
		d.con.Printf("Patient not found.\n")
		return nil
	}
	d.printBasicView(p.Basic())
	return nil
}

func (d *Dispatcher) viewPatientFull() error {
	id, done, err := d.promptPatientID(true)
	if err != nil || done {
		return err
	}
	p, getErr := d.dir.Patients.Get(id)
	if getErr != nil {
		d.con.Printf("Patient not found.\n")
		return nil
	}
	d.printFullView(p.Full())
	return nil
}

func (d *Dispatcher) addDiagnosis() error {
	id, done, err := d.promptPatientID(false)
	if err != nil || done {
		return err
	}
	text, err := d.con.ReadNonEmptyLine("Enter diagnostic information: ")
	if err != nil {
		return err
	}
	if addErr := d.dir.Patients.AddDiagnosis(id, text); addErr != nil {
		d.con.Printf("Patient not found.\n")
		return nil
	}
	d.con.Printf("Diagnosis added.\n")
	return nil
}

func (d *Dispatcher) addMedicalNote() error {
	id, done, err := d.promptPatientID(false)
	if err != nil || done {
		return err
	}
	text, err := d.con.ReadNonEmptyLine("Enter medical note: ")
	if err != nil {
		return err
	}
	if addErr := d.dir.Patients.AddMedicalNote(id, text); addErr != nil {
		d.con.Printf("Patient not found.\n")
		return nil
	}
	d.con.Printf("Medical note added.\n")
	return nil
}

func (d *Dispatcher) addPrescription(role auth.Role) error {
	id, done, err := d.promptPatientID(false)
	if err != nil || done {
		return err
	}
	prompt, confirmation := "Enter prescription details: ", "Prescription recorded.\n"
	if role == auth.RolePharmacist {
		prompt, confirmation = "Enter medication details dispensed: ", "Medication dispensed and recorded.\n"
	}
	text, err := d.con.ReadNonEmptyLine(prompt)
	if err != nil {
		return err
	}
	if addErr := d.dir.Patients.AddPrescription(id, text); addErr != nil {
		d.con.Printf("Patient not found.\n")
		return nil
	}
	d.con.Printf(confirmation)
	return nil
}

func (d *Dispatcher) addCharge(role auth.Role) error {
	id, done, err := d.promptPatientID(false)
	if err != nil || done {
		return err
	}
	prompt, confirmation := "Charge description (e.g., Consultation, X-ray): ", "Charge added to bill.\n"
	if role == auth.RolePharmacist {
		prompt, confirmation = "Medication description: ", "Medication cost added to bill.\n"
	}
	description, err := d.con.ReadNonEmptyLine(prompt)
	if err != nil {
		return err
	}
	amount, err := d.con.ReadPositiveAmount("Amount: $")
	if err != nil {
		return err
	}
	if addErr := d.dir.Patients.AddCharge(id, description, amount); addErr != nil {
		d.con.Printf("Patient not found.\n")
		return nil
	}
	d.con.Printf(confirmation)
	return nil
}

func (d *Dispatcher) viewBill() error {
	id, done, err := d.promptPatientID(false)
	if err != nil || done {
		return err
	}
	summary, sumErr := d.dir.Patients.BillSummary(id)
	if sumErr != nil {
		d.con.Printf("Patient not found.\n")
		return nil
	}
	d.printBillSummary(summary)
	return nil
}

func (d *Dispatcher) addPayment() error {
	id, done, err := d.promptPatientID(false)
	if err != nil || done {
		return err
	}
	method, err := d.con.ReadNonEmptyLine("Payment method (e.g., Cash/Card/Insurance): ")
	if err != nil {
		return err
	}
	amount, err := d.con.ReadPositiveAmount("Amount paid: $")
	if err != nil {
		return err
	}
	if addErr := d.dir.Patients.AddPayment(id, method, amount); addErr != nil {
		d.con.Printf("Patient not found.\n")
		return nil
	}
	d.con.Printf("Payment recorded.\n")
	return nil
}

var statusChoices = []billing.Status{
	billing.StatusFullyCleared, billing.StatusPartiallyPaid, billing.StatusPending,
}

func (d *Dispatcher) setBillStatus() error {
	id, done, err := d.promptPatientID(false)
	if err != nil || done {
		return err
	}
	d.con.Printf("Select status:\n")
	for i, s := range statusChoices {
		d.con.Printf("%d. %s\n", i+1, s.Label())
	}
	choice, err := d.con.ReadIntInRange("Choose: ", 1, len(statusChoices))
	if err != nil {
		return err
	}
	if setErr := d.dir.Patients.SetBillStatus(id, statusChoices[choice-1]); setErr != nil {
		d.con.Printf("Could not update bill status: %v\n", setErr)
		return nil
	}
	d.con.Printf("Bill status updated.\n")
	return nil
}
