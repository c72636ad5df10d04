package repositories

import (
	"renewkart/internal/models"
)

// ProductFilter narrows List results. Zero values impose no constraint, and
// a Category or Condition of "All" is treated the same as unset. All
// provided predicates must hold (logical AND). Search is a case-insensitive
// substring match against name and brand; price bounds are inclusive.
type ProductFilter struct {
	Search    string
	Category  string
	MinPrice  int
	MaxPrice  int
	Condition string
}

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	List(filter ProductFilter) ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	Create(product *models.Product) error
}
