package admin

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinic/clinic/internal/platform/auth"
)

// Account is a credential pair plus a role tag. Username and role are
// immutable after creation; the password is mutable by the account holder
// only. Passwords are compared as opaque plaintext secrets; hashing is out
// of scope for this tool.
type Account struct {
	ID        uuid.UUID
	Username  string
	Role      auth.Role
	CreatedAt time.Time

	password string
}

func NewAccount(username, password string, role auth.Role) *Account {
	return &Account{Username: username, Role: role, password: password}
}

// CheckPassword reports whether candidate matches the stored secret exactly.
func (a *Account) CheckPassword(candidate string) bool {
	return candidate == a.password
}

// SetPassword overwrites the stored secret unconditionally. Callers must
// ensure only the account holder reaches this.
func (a *Account) SetPassword(newPassword string) {
	a.password = newPassword
}

// Info is the read-only listing row for an account.
type Info struct {
	Username string
	Role     auth.Role
}
