package repositories

import (
	"context"

	"renewkart/internal/models"
)

// CartStore persists a user's cart between requests, the way the web client
// kept it in browser storage. Implementations serialize the item list as
// JSON; a stored payload that no longer parses is ignored and reads back as
// an empty cart rather than an error.
type CartStore interface {
	Get(ctx context.Context, userID int) ([]models.CartItem, error)
	Save(ctx context.Context, userID int, items []models.CartItem) error
	Clear(ctx context.Context, userID int) error
}
