// Package session drives the interactive login loop and the per-role menus.
// Role-based access control is structural: each menu is built from the role's
// permitted operation set, so nothing outside that set is reachable.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/directory"
	"github.com/clinic/clinic/internal/domain/admin"
	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/internal/platform/console"
)

const defaultMaxPatientID = 1000000

// Dispatcher owns the session state machine: logged out, authenticating, or
// inside one role's menu. There is a single interactive actor; every
// operation runs to completion before the next prompt.
type Dispatcher struct {
	dir          *directory.Directory
	con          *console.Reader
	log          zerolog.Logger
	maxPatientID int
}

func NewDispatcher(dir *directory.Directory, con *console.Reader, logger zerolog.Logger, maxPatientID int) *Dispatcher {
	if maxPatientID <= 0 {
		maxPatientID = defaultMaxPatientID
	}
	return &Dispatcher{dir: dir, con: con, log: logger, maxPatientID: maxPatientID}
}

// Run drives the top-level loop until the operator chooses Exit or the input
// stream ends. Failed logins return to the top-level menu; there is no
// attempt limit.
func (d *Dispatcher) Run() error {
	for {
		d.con.Printf("\n=== Clinic Record System ===\n")
		d.con.Printf("1. Login\n")
		d.con.Printf("2. Exit\n")
		opt, err := d.con.ReadIntInRange("Choose an option: ", 1, 2)
		if err != nil {
			return d.finish(err)
		}
		if opt == 2 {
			d.con.Printf("Exiting. Goodbye.\n")
			return nil
		}

		username, err := d.con.ReadNonEmptyLine("Username: ")
		if err != nil {
			return d.finish(err)
		}
		password, err := d.con.ReadNonEmptyLine("Password: ")
		if err != nil {
			return d.finish(err)
		}

		acct, authErr := d.dir.Accounts.Authenticate(username, password)
		if authErr != nil {
			d.con.Printf("Invalid username or password.\n")
			continue
		}

		d.con.Printf("Login successful. Welcome, %s (%s)\n", acct.Username, acct.Role.Display())
		if err := d.roleMenu(acct); err != nil {
			return d.finish(err)
		}
		d.con.Printf("Logged out.\n")
	}
}

// finish maps end-of-input on the console to a clean shutdown.
func (d *Dispatcher) finish(err error) error {
	if errors.Is(err, io.EOF) {
		d.con.Printf("\n")
		d.log.Info().Msg("input stream closed, shutting down")
		return nil
	}
	return err
}

func (d *Dispatcher) roleMenu(acct *admin.Account) error {
	ops := auth.PermittedOperations(acct.Role)
	for {
		d.con.Printf("\n--- %s Menu ---\n", acct.Role.Display())
		for i, op := range ops {
			d.con.Printf("%d. %s\n", i+1, menuLabel(acct.Role, op))
		}
		d.con.Printf("%d. Logout (Back)\n", len(ops)+1)

		choice, err := d.con.ReadIntInRange("Choose an option: ", 1, len(ops)+1)
		if err != nil {
			return err
		}
		if choice == len(ops)+1 {
			return nil
		}
		if err := d.dispatch(acct, ops[choice-1]); err != nil {
			return err
		}
	}
}

// dispatch routes one chosen operation to its handler. Handler errors are
// I/O errors only; domain failures are reported on the console and the menu
// continues.
func (d *Dispatcher) dispatch(acct *admin.Account, op auth.Operation) error {
	switch op {
	case auth.OpCreateAccount:
		return d.createAccount()
	case auth.OpDeleteAccount:
		return d.deleteAccount(acct)
	case auth.OpListAccounts:
		d.printAccounts()
		return nil
	case auth.OpChangePassword:
		return d.changePassword(acct)
	case auth.OpRegisterPatient:
		return d.registerPatient()
	case auth.OpListPatients:
		d.printPatientsBrief()
		return nil
	case auth.OpViewPatientBasic:
		return d.viewPatientBasic()
	case auth.OpViewPatientFull:
		return d.viewPatientFull()
	case auth.OpAddDiagnosis:
		return d.addDiagnosis()
	case auth.OpAddMedicalNote:
		return d.addMedicalNote()
	case auth.OpAddPrescription:
		return d.addPrescription(acct.Role)
	case auth.OpAddCharge:
		return d.addCharge(acct.Role)
	case auth.OpViewBill:
		return d.viewBill()
	case auth.OpAddPayment:
		return d.addPayment()
	case auth.OpSetBillStatus:
		return d.setBillStatus()
	}
	return fmt.Errorf("unhandled operation: %s", op)
}
