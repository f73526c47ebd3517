// Package auth defines the fixed staff roles and the capability table that
// maps each role to the set of directory operations it may invoke. Access
// control is structural: the session layer builds each role's menu from
// PermittedOperations, so operations outside a role's set are unreachable.
package auth

import (
	"fmt"
	"strings"
)

// Role is the capability class carried on an account, fixed at creation.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDoctor     Role = "doctor"
	RoleNurse      Role = "nurse"
	RolePharmacist Role = "pharmacist"
	RoleAccounts   Role = "accounts"
)

// Roles lists every role in menu order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleDoctor, RoleNurse, RolePharmacist, RoleAccounts}
}

// ParseRole resolves a case-insensitive role name.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleDoctor:
		return RoleDoctor, nil
	case RoleNurse:
		return RoleNurse, nil
	case RolePharmacist:
		return RolePharmacist, nil
	case RoleAccounts:
		return RoleAccounts, nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

// Valid reports whether r is one of the five fixed roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse, RolePharmacist, RoleAccounts:
		return true
	}
	return false
}

// Display returns the staff-facing role name.
func (r Role) Display() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleDoctor:
		return "Doctor"
	case RoleNurse:
		return "Nurse"
	case RolePharmacist:
		return "Pharmacist"
	case RoleAccounts:
		return "Accounts Manager"
	}
	return "Unknown"
}

// Operation tags a single directory-level action a role may perform.
type Operation string

const (
	OpCreateAccount    Operation = "account.create"
	OpDeleteAccount    Operation = "account.delete"
	OpListAccounts     Operation = "account.list"
	OpChangePassword   Operation = "account.change-password"
	OpRegisterPatient  Operation = "patient.register"
	OpListPatients     Operation = "patient.list"
	OpViewPatientBasic Operation = "patient.view-basic"
	OpViewPatientFull  Operation = "patient.view-full"
	OpAddDiagnosis     Operation = "patient.add-diagnosis"
	OpAddMedicalNote   Operation = "patient.add-note"
	OpAddPrescription  Operation = "patient.add-prescription"
	OpAddCharge        Operation = "bill.add-charge"
	OpViewBill         Operation = "bill.view"
	OpAddPayment       Operation = "bill.add-payment"
	OpSetBillStatus    Operation = "bill.set-status"
)

// PermittedOperations returns the fixed, ordered operation set for a role.
// The order is the menu order presented to the operator.
func PermittedOperations(r Role) []Operation {
	switch r {
	case RoleAdmin:
		return []Operation{OpCreateAccount, OpDeleteAccount, OpListAccounts, OpChangePassword}
	case RoleNurse:
		return []Operation{OpRegisterPatient, OpViewPatientBasic, OpChangePassword}
	case RoleDoctor:
		return []Operation{
			OpListPatients, OpViewPatientFull, OpAddDiagnosis,
			OpAddMedicalNote, OpAddPrescription, OpAddCharge, OpChangePassword,
		}
	case RolePharmacist:
		return []Operation{OpViewPatientFull, OpAddPrescription, OpAddCharge, OpChangePassword}
	case RoleAccounts:
		return []Operation{OpViewBill, OpAddPayment, OpSetBillStatus, OpChangePassword}
	}
	return nil
}

// Can reports whether the role's operation set includes op.
func Can(r Role, op Operation) bool {
	for _, permitted := range PermittedOperations(r) {
		if permitted == op {
			return true
		}
	}
	return false
}
