package admin

import (
	"errors"

	"github.com/clinic/clinic/internal/platform/auth"
)

var (
	// ErrNotFound is returned when no account carries the requested username.
	ErrNotFound = errors.New("account not found")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// AccountRepository owns the account collection. Accounts are addressed by
// username key everywhere outside the store; pointers into the collection are
// never handed across a mutation boundary.
type AccountRepository interface {
	// Create assigns an ID and stores the account. The username must be
	// unique; the store enforces this even if the caller checked first.
	Create(a *Account) error
	GetByUsername(username string) (*Account, error)
	Delete(username string) error
	// List returns accounts in insertion order.
	List() []*Account
	CountByRole(role auth.Role) int
}
