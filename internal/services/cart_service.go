package services

import (
	"context"
	"fmt"

	"renewkart/internal/models"
	"renewkart/internal/repositories"
)

// CartView is the cart as returned to clients, with its derived totals.
type CartView struct {
	Items     []models.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	CartTotal int               `json:"cartTotal"`
}

// CartService manages per-user carts on top of a CartStore. Every mutation
// is written back to the store, mirroring how the web client persisted the
// cart on each change.
type CartService struct {
	store       repositories.CartStore
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(store repositories.CartStore, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		store:       store,
		productRepo: productRepo,
	}
}

// Get returns the user's current cart.
func (s *CartService) Get(ctx context.Context, userID int) (*CartView, error) {
	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return newCartView(items), nil
}

// Add puts one unit of the product into the cart. Adding a product that is
// already present increments its quantity rather than appending a second
// line.
func (s *CartService) Add(ctx context.Context, userID, productID int) (*CartView, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", productID, err)
	}

	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{Product: *product, Quantity: 1})
	}

	if err := s.store.Save(ctx, userID, items); err != nil {
		return nil, err
	}
	return newCartView(items), nil
}

// UpdateQuantity sets the quantity of a cart line. Quantities below 1 leave
// the cart unchanged, as does a product id that is not in the cart.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID, quantity int) (*CartView, error) {
	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		return newCartView(items), nil
	}

	changed := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			changed = true
			break
		}
	}
	if changed {
		if err := s.store.Save(ctx, userID, items); err != nil {
			return nil, err
		}
	}
	return newCartView(items), nil
}

// Remove drops a product from the cart entirely.
func (s *CartService) Remove(ctx context.Context, userID, productID int) (*CartView, error) {
	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}

	if err := s.store.Save(ctx, userID, kept); err != nil {
		return nil, err
	}
	return newCartView(kept), nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, userID int) error {
	return s.store.Clear(ctx, userID)
}

func newCartView(items []models.CartItem) *CartView {
	view := &CartView{Items: items}
	if view.Items == nil {
		view.Items = []models.CartItem{}
	}
	for _, item := range items {
		view.ItemCount += item.Quantity
		view.CartTotal += item.Price * item.Quantity
	}
	return view
}
