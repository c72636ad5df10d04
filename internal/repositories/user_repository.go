package repositories

import "renewkart/internal/models"

// UserRepository defines the interface for user data access. Create returns
// ErrDuplicate when the phone number is already registered.
type UserRepository interface {
	Create(user *models.User) error
	GetByPhone(phone string) (*models.User, error)
	GetByID(id int) (*models.User, error)
}
