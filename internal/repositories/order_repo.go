package repositories

import "renewkart/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id int) (*models.Order, error)
	GetByUserID(userID int) ([]models.Order, error)
	UpdateStatus(id int, status string) error
}
