package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"renewkart/internal/models"
	"renewkart/internal/repositories"
	"renewkart/pkg/rabbitmq"

	"github.com/google/uuid"
)

// Errors the order service maps request problems to.
var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidStatus     = errors.New("invalid order status")
)

// OrderEventPublisher publishes order lifecycle events. A nil publisher
// disables publishing without failing order creation.
type OrderEventPublisher interface {
	PublishOrderCreated(event rabbitmq.OrderEvent) error
}

// OrderItemRequest is one line of an incoming checkout request.
type OrderItemRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// CreateOrder resolves each requested product, snapshots its name and price,
// computes the total server-side and persists the order with status Pending.
// Unknown products surface repositories.ErrNotFound; a quantity exceeding
// stock surfaces ErrInsufficientStock.
func (s *OrderService) CreateOrder(userID int, items []OrderItemRequest, address string) (*models.Order, error) {
	var total int
	snapshots := make([]models.OrderItem, 0, len(items))

	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, err)
		}
		if product.Stock < item.Quantity {
			return nil, fmt.Errorf("%w for %s (requested %d, available %d)",
				ErrInsufficientStock, product.Name, item.Quantity, product.Stock)
		}

		snapshots = append(snapshots, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
		total += product.Price * item.Quantity
	}

	order := &models.Order{
		UserID:  userID,
		Items:   snapshots,
		Total:   total,
		Status:  models.StatusPending,
		Address: address,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishCreated(order)

	return order, nil
}

// publishCreated emits an order.created event. Publish failures are logged,
// never propagated: the order is already persisted.
func (s *OrderService) publishCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}

	event := rabbitmq.OrderEvent{
		EventID:    uuid.New().String(),
		Type:       "order.created",
		OrderID:    order.ID,
		UserID:     order.UserID,
		Total:      order.Total,
		Status:     order.Status,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishOrderCreated(event); err != nil {
		log.Printf("Warning: failed to publish order created event for order %d: %v", order.ID, err)
	}
}

// ListOrders returns all orders belonging to a user.
func (s *OrderService) ListOrders(userID int) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetOrder returns a single order by id.
func (s *OrderService) GetOrder(id int) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateStatus moves an order to one of the known fulfillment statuses.
func (s *OrderService) UpdateStatus(id int, status string) error {
	switch status {
	case models.StatusPending, models.StatusShipped, models.StatusOutForDelivery, models.StatusDelivered:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order %d status: %w", id, err)
	}
	return nil
}
