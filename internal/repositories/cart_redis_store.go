package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"renewkart/internal/models"

	"github.com/go-redis/redis/v8"
)

// RedisCartStore is a Redis-backed implementation of CartStore. Each user's
// cart is stored as a JSON array under "cart:<userID>".
type RedisCartStore struct {
	client *redis.Client
}

// NewRedisCartStore creates a new RedisCartStore around an existing client.
func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{
		client: client,
	}
}

func cartKey(userID int) string {
	return fmt.Sprintf("cart:%d", userID)
}

// Get returns the user's cart items. A missing key or an unparseable payload
// yields an empty cart.
func (s *RedisCartStore) Get(ctx context.Context, userID int) ([]models.CartItem, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.CartItem{}, nil
		}
		return nil, fmt.Errorf("failed to load cart for user %d: %w", userID, err)
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
func (s *RedisCartStore) Save(ctx context.Context, userID int, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for user %d: %w", userID, err)
	}
	if err := s.client.Set(ctx, cartKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart for user %d: %w", userID, err)
	}
	return nil
}

// Clear removes the user's stored cart.
func (s *RedisCartStore) Clear(ctx context.Context, userID int) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart for user %d: %w", userID, err)
	}
	return nil
}
