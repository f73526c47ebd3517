package admin

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinic/clinic/internal/platform/auth"
)

// memoryRepository keeps accounts in process memory. Insertion order is kept
// for listing; lookup goes through the username index.
type memoryRepository struct {
	accounts   []*Account
	byUsername map[string]*Account
}

// NewMemoryRepository returns an empty in-memory account store.
func NewMemoryRepository() AccountRepository {
	return &memoryRepository{byUsername: make(map[string]*Account)}
}

func (r *memoryRepository) Create(a *Account) error {
	if _, exists := r.byUsername[a.Username]; exists {
		return ErrDuplicateUsername
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	r.accounts = append(r.accounts, a)
	r.byUsername[a.Username] = a
	return nil
}

func (r *memoryRepository) GetByUsername(username string) (*Account, error) {
	a, ok := r.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

func (r *memoryRepository) Delete(username string) error {
	if _, ok := r.byUsername[username]; !ok {
		return ErrNotFound
	}
	delete(r.byUsername, username)
	for i, a := range r.accounts {
		if a.Username == username {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryRepository) List() []*Account {
	out := make([]*Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

func (r *memoryRepository) CountByRole(role auth.Role) int {
	n := 0
	for _, a := range r.accounts {
		if a.Role == role {
			n++
		}
	}
	return n
}
