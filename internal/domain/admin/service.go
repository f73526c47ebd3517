package admin

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/auth"
)

var (
	// ErrInvalidCredentials is returned on any authentication failure; it
	// does not reveal whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrLastAdmin is returned when deleting would leave no admin account.
	ErrLastAdmin = errors.New("cannot delete the last admin account")
)

// Service is the account half of the directory's mutation authority.
// Self-deletion is refused by the session layer, not here; the last-admin
// rule is enforced here so it holds for every caller.
type Service struct {
	accounts AccountRepository
	log      zerolog.Logger
}

func NewService(accounts AccountRepository, logger zerolog.Logger) *Service {
	return &Service{accounts: accounts, log: logger}
}

// Authenticate returns the account only when both username and password
// match exactly. Any number of attempts is permitted; there is no lockout.
func (s *Service) Authenticate(username, password string) (*Account, error) {
	a, err := s.accounts.GetByUsername(username)
	if err != nil || !a.CheckPassword(password) {
		s.log.Warn().Str("username", username).Msg("authentication failed")
		return nil, ErrInvalidCredentials
	}
	s.log.Info().Str("username", username).Str("role", string(a.Role)).Msg("authentication succeeded")
	return a, nil
}

// UsernameExists reports whether an account with that exact username exists.
func (s *Service) UsernameExists(username string) bool {
	_, err := s.accounts.GetByUsername(username)
	return err == nil
}

// Create stores a new account with the given role.
func (s *Service) Create(username, password string, role auth.Role) (*Account, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	a := NewAccount(username, password, role)
	if err := s.accounts.Create(a); err != nil {
		return nil, err
	}
	s.log.Info().Str("username", username).Str("role", string(role)).Msg("account created")
	return a, nil
}

// Delete removes an account by username. It refuses to remove the sole
// remaining admin. Self-deletion checks belong to the caller.
func (s *Service) Delete(username string) error {
	a, err := s.accounts.GetByUsername(username)
	if err != nil {
		return err
	}
	if a.Role == auth.RoleAdmin && s.accounts.CountByRole(auth.RoleAdmin) <= 1 {
		return ErrLastAdmin
	}
	if err := s.accounts.Delete(username); err != nil {
		return err
	}
	s.log.Info().Str("username", username).Msg("account deleted")
	return nil
}

// List snapshots all accounts in insertion order.
func (s *Service) List() []Info {
	accounts := s.accounts.List()
	out := make([]Info, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, Info{Username: a.Username, Role: a.Role})
	}
	return out
}

// ChangePassword overwrites an account's secret. The session layer only
// routes an account holder here for their own account.
func (s *Service) ChangePassword(username, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("password is required")
	}
	a, err := s.accounts.GetByUsername(username)
	if err != nil {
		return err
	}
	a.SetPassword(newPassword)
	s.log.Info().Str("username", username).Msg("password changed")
	return nil
}
