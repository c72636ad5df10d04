package repositories

import (
	"fmt"
	"strings"
	"sync"

	"renewkart/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. Products keep their insertion order and ids are
// assigned sequentially starting at 1.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	index    map[int]int // id -> position in products
	nextID   int
}

// NewMemoryProductRepository creates a new empty MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		index:  make(map[int]int),
		nextID: 1,
	}
}

// List returns all products satisfying every provided filter predicate, in
// insertion order.
func (r *MemoryProductRepository) List(filter ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if matchesFilter(p, filter) {
			results = append(results, p)
		}
	}
	return results, nil
}

// GetByID returns a product by its id, or ErrNotFound.
func (r *MemoryProductRepository) GetByID(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	product := r.products[pos]
	return &product, nil
}

// Create adds a new product, assigning the next sequential id when none is
// set.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
	}
	if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	if _, ok := r.index[product.ID]; ok {
		return fmt.Errorf("product %d: %w", product.ID, ErrDuplicate)
	}
	r.index[product.ID] = len(r.products)
	r.products = append(r.products, *product)
	return nil
}

func matchesFilter(p models.Product, f ProductFilter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) {
			return false
		}
	}
	if f.Category != "" && f.Category != "All" && p.Category != f.Category {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Condition != "" && f.Condition != "All" && p.Condition != f.Condition {
		return false
	}
	return true
}
