package repositories

import (
	"fmt"
	"sync"

	"renewkart/internal/models"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	users   map[int]models.User
	byPhone map[string]int
	nextID  int
}

// NewMemoryUserRepository creates a new empty MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:   make(map[int]models.User),
		byPhone: make(map[string]int),
		nextID:  1,
	}
}

// Create stores a new user, assigning the next sequential id. Phone numbers
// must be unique.
func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byPhone[user.Phone]; ok {
		return fmt.Errorf("phone %s: %w", user.Phone, ErrDuplicate)
	}
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.users[user.ID] = *user
	r.byPhone[user.Phone] = user.ID
	return nil
}

// GetByPhone returns the user registered with the given phone number, or
// ErrNotFound. Matching is exact, with no case folding.
func (r *MemoryUserRepository) GetByPhone(phone string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPhone[phone]
	if !ok {
		return nil, fmt.Errorf("user with phone %s: %w", phone, ErrNotFound)
	}
	user := r.users[id]
	return &user, nil
}

// GetByID returns a user by id, or ErrNotFound.
func (r *MemoryUserRepository) GetByID(id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return &user, nil
}
