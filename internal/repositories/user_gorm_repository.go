package repositories

import (
	"errors"
	"fmt"

	"renewkart/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user. The phone column carries a unique index, so a
// duplicate registration surfaces as ErrDuplicate.
func (r *GORMUserRepository) Create(user *models.User) error {
	var count int64
	if err := r.db.Model(&models.User{}).Where("phone = ?", user.Phone).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check phone uniqueness: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("phone %s: %w", user.Phone, ErrDuplicate)
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByPhone retrieves a user by phone number from the database.
func (r *GORMUserRepository) GetByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with phone %s: %w", phone, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by phone %s: %w", phone, err)
	}
	return &user, nil
}

// GetByID retrieves a user by id from the database.
func (r *GORMUserRepository) GetByID(id int) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}
