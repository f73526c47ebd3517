// Package directory wires the account and patient stores together and is the
// sole mutation authority over both: every session operation reaches the
// collections through here.
package directory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/domain/admin"
	"github.com/clinic/clinic/internal/domain/identity"
	"github.com/clinic/clinic/internal/platform/auth"
)

// Directory composes the account and patient services over in-memory stores.
// All state is discarded on process exit by design.
type Directory struct {
	Accounts *admin.Service
	Patients *identity.Service
}

// New builds an empty directory and seeds the bootstrap admin account so the
// at-least-one-admin invariant holds from the first instant.
func New(bootstrapUsername, bootstrapPassword string, logger zerolog.Logger) (*Directory, error) {
	d := &Directory{
		Accounts: admin.NewService(admin.NewMemoryRepository(), logger),
		Patients: identity.NewService(identity.NewMemoryRepository(), logger),
	}
	if _, err := d.Accounts.Create(bootstrapUsername, bootstrapPassword, auth.RoleAdmin); err != nil {
		return nil, fmt.Errorf("seed bootstrap admin: %w", err)
	}
	logger.Info().Str("username", bootstrapUsername).Msg("bootstrap admin created")
	return d, nil
}
