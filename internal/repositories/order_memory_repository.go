package repositories

import (
	"fmt"
	"sync"
	"time"

	"renewkart/internal/models"
)

// MemoryOrderRepository is an in-memory implementation of OrderRepository.
// Orders keep their insertion order and ids are assigned sequentially
// starting at 1.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
	index  map[int]int // id -> position in orders
	nextID int
}

// NewMemoryOrderRepository creates a new empty MemoryOrderRepository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		index:  make(map[int]int),
		nextID: 1,
	}
}

// Create stores a new order, assigning the next sequential id and stamping
// CreatedAt when unset.
func (r *MemoryOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == 0 {
		order.ID = r.nextID
	}
	if order.ID >= r.nextID {
		r.nextID = order.ID + 1
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	if _, ok := r.index[order.ID]; ok {
		return fmt.Errorf("order %d: %w", order.ID, ErrDuplicate)
	}
	r.index[order.ID] = len(r.orders)
	r.orders = append(r.orders, *order)
	return nil
}

// GetByID returns an order by id, or ErrNotFound.
func (r *MemoryOrderRepository) GetByID(id int) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	order := r.orders[pos]
	return &order, nil
}

// GetByUserID returns all orders belonging to a user, in insertion order.
func (r *MemoryOrderRepository) GetByUserID(userID int) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			results = append(results, order)
		}
	}
	return results, nil
}

// UpdateStatus changes the status of an existing order.
func (r *MemoryOrderRepository) UpdateStatus(id int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	r.orders[pos].Status = status
	return nil
}
