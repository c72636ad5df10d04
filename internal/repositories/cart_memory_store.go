package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"renewkart/internal/models"
)

// MemoryCartStore is an in-memory implementation of CartStore. It keeps the
// serialized JSON rather than the decoded items so round-trip and
// corrupt-payload behavior match the persistent stores.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[int][]byte
}

// NewMemoryCartStore creates a new empty MemoryCartStore.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[int][]byte),
	}
}

// Get returns the user's cart items. A missing or unparseable payload yields
// an empty cart.
func (s *MemoryCartStore) Get(_ context.Context, userID int) ([]models.CartItem, error) {
	s.mu.RLock()
	data, ok := s.carts[userID]
	s.mu.RUnlock()

	if !ok {
		return []models.CartItem{}, nil
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("Discarding unparseable cart for user %d: %v", userID, err)
		return []models.CartItem{}, nil
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}

// Save replaces the user's stored cart with the given items.
func (s *MemoryCartStore) Save(_ context.Context, userID int, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for user %d: %w", userID, err)
	}

	s.mu.Lock()
	s.carts[userID] = data
	s.mu.Unlock()
	return nil
}

// Clear removes the user's stored cart.
func (s *MemoryCartStore) Clear(_ context.Context, userID int) error {
	s.mu.Lock()
	delete(s.carts, userID)
	s.mu.Unlock()
	return nil
}
