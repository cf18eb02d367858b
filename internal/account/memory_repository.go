package account

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byEmail map[string]Account
}

// NewMemoryRepository builds an in-memory account store for testing. It
// enforces the same email uniqueness the Postgres index does.
func NewMemoryRepository() Repository {
	return &memoryRepository{byEmail: make(map[string]Account)}
}

func (r *memoryRepository) Create(_ context.Context, input RegistrationInput, passwordHash string) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[input.Email]; exists {
		return Account{}, ErrDuplicateEmail
	}
	r.nextID++
	acct := Account{
		ID:           r.nextID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Height:       input.Height,
		CreatedAt:    time.Now().UTC(),
	}
	r.byEmail[input.Email] = acct
	return acct, nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acct, ok := r.byEmail[email]
	if !ok {
		return Account{}, ErrNotFound
	}
	return acct, nil
}
