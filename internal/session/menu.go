package session

import "github.com/clinic/clinic/internal/platform/auth"

// menuLabel returns the menu text for one operation. A few labels vary by
// role: pharmacists see dispensing language where doctors see prescribing.
func menuLabel(role auth.Role, op auth.Operation) string {
	if role == auth.RolePharmacist {
		switch op {
		case auth.OpViewPatientFull:
			return "View patient prescriptions"
		case auth.OpAddPrescription:
			return "Dispense medication"
		case auth.OpAddCharge:
			return "Add medication cost to bill"
		}
	}
	switch op {
	case auth.OpCreateAccount:
		return "Register new employee"
	case auth.OpDeleteAccount:
		return "Delete employee account"
	case auth.OpListAccounts:
		return "View all employees"
	case auth.OpChangePassword:
		return "Change my password"
	case auth.OpRegisterPatient:
		return "Register new patient"
	case auth.OpListPatients:
		return "View all patients"
	case auth.OpViewPatientBasic:
		return "View patient details"
	case auth.OpViewPatientFull:
		return "View full patient record"
	case auth.OpAddDiagnosis:
		return "Add diagnosis"
	case auth.OpAddMedicalNote:
		return "Add medical note"
	case auth.OpAddPrescription:
		return "Add prescription"
	case auth.OpAddCharge:
		return "Add charge to bill"
	case auth.OpViewBill:
		return "View patient bill"
	case auth.OpAddPayment:
		return "Record payment"
	case auth.OpSetBillStatus:
		return "Update bill status"
	}
	return string(op)
}
