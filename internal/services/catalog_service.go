package services

import (
	"renewkart/internal/models"
	"renewkart/internal/repositories"
)

// CatalogService handles business logic related to the product catalog.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListProducts retrieves all products satisfying the filter.
func (s *CatalogService) ListProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.List(filter)
}

// GetProduct retrieves a single product by its id.
func (s *CatalogService) GetProduct(id int) (*models.Product, error) {
	return s.repo.GetByID(id)
}
