package admin

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/auth"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository(), zerolog.Nop())
}

func TestAuthenticate(t *testing.T) {
	s := newTestService()

	if _, err := s.Authenticate("x", "y"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("empty store: err = %v, want ErrInvalidCredentials", err)
	}

	if _, err := s.Create("x", "y", auth.RoleNurse); err != nil {
		t.Fatalf("Create: %v", err)
	}

	a, err := s.Authenticate("x", "y")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if a.Username != "x" || a.Role != auth.RoleNurse {
		t.Errorf("account = %s/%s, want x/nurse", a.Username, a.Role)
	}

	if _, err := s.Authenticate("x", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	// Usernames are case-sensitive.
	if _, err := s.Authenticate("X", "y"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("case-folded username: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestCreateValidation(t *testing.T) {
	s := newTestService()
	if _, err := s.Create("", "pw", auth.RoleNurse); err == nil {
		t.Error("expected error for empty username")
	}
	if _, err := s.Create("u", "", auth.RoleNurse); err == nil {
		t.Error("expected error for empty password")
	}
	if _, err := s.Create("u", "pw", auth.Role("janitor")); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestDuplicateUsernameRejected(t *testing.T) {
	s := newTestService()
	if _, err := s.Create("nina", "pw1", auth.RoleNurse); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create("nina", "pw2", auth.RoleDoctor); !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("err = %v, want ErrDuplicateUsername", err)
	}

	// The store must be unchanged after the collision.
	list := s.List()
	if len(list) != 1 || list[0].Role != auth.RoleNurse {
		t.Errorf("list = %v, want the original nurse account only", list)
	}
	if _, err := s.Authenticate("nina", "pw1"); err != nil {
		t.Errorf("original credentials must still authenticate: %v", err)
	}
}

func TestDeleteRules(t *testing.T) {
	s := newTestService()
	if _, err := s.Create("root", "pw", auth.RoleAdmin); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown target: err = %v, want ErrNotFound", err)
	}
	if err := s.Delete("root"); !errors.Is(err, ErrLastAdmin) {
		t.Errorf("sole admin: err = %v, want ErrLastAdmin", err)
	}
	if len(s.List()) != 1 {
		t.Error("failed delete must leave the store unchanged")
	}

	// A second admin makes the first deletable.
	if _, err := s.Create("root2", "pw", auth.RoleAdmin); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Delete("root"); err != nil {
		t.Errorf("Delete with a spare admin: %v", err)
	}
	if len(s.List()) != 1 {
		t.Errorf("list length = %d, want 1", len(s.List()))
	}
	// The remaining admin is now protected again.
	if err := s.Delete("root2"); !errors.Is(err, ErrLastAdmin) {
		t.Errorf("err = %v, want ErrLastAdmin", err)
	}
}

func TestDeleteNonAdmin(t *testing.T) {
	s := newTestService()
	s.Create("root", "pw", auth.RoleAdmin)
	s.Create("doc", "pw", auth.RoleDoctor)
	s.Create("nina", "pw", auth.RoleNurse)

	if err := s.Delete("doc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	list := s.List()
	if len(list) != 2 {
		t.Fatalf("list length = %d, want 2", len(list))
	}
	// Insertion order is preserved for the survivors.
	if list[0].Username != "root" || list[1].Username != "nina" {
		t.Errorf("list order = %s, %s; want root, nina", list[0].Username, list[1].Username)
	}
}

func TestListInsertionOrder(t *testing.T) {
	s := newTestService()
	names := []string{"root", "doc", "nina", "phil", "beancounter"}
	roles := []auth.Role{auth.RoleAdmin, auth.RoleDoctor, auth.RoleNurse, auth.RolePharmacist, auth.RoleAccounts}
	for i, n := range names {
		if _, err := s.Create(n, "pw", roles[i]); err != nil {
			t.Fatalf("Create(%s): %v", n, err)
		}
	}
	list := s.List()
	for i, e := range list {
		if e.Username != names[i] || e.Role != roles[i] {
			t.Errorf("list[%d] = %s/%s, want %s/%s", i, e.Username, e.Role, names[i], roles[i])
		}
	}
}

func TestChangePassword(t *testing.T) {
	s := newTestService()
	s.Create("nina", "old", auth.RoleNurse)

	if err := s.ChangePassword("nina", "new"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if _, err := s.Authenticate("nina", "old"); err == nil {
		t.Error("old password must no longer authenticate")
	}
	if _, err := s.Authenticate("nina", "new"); err != nil {
		t.Errorf("new password must authenticate: %v", err)
	}

	if err := s.ChangePassword("nina", ""); err == nil {
		t.Error("expected error for empty password")
	}
	if err := s.ChangePassword("ghost", "pw"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
