package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/davidparhut/iBoss/internal/models"
	"github.com/davidparhut/iBoss/internal/repositories"
	"github.com/davidparhut/iBoss/pkg/rabbitmq"

	"github.com/google/uuid"
)

// Checkout session states.
const (
	CheckoutStateIdle       = "idle"
	CheckoutStateFormOpen   = "form_open"
	CheckoutStateSubmitting = "submitting"
	CheckoutStateSuccess    = "success"
	CheckoutStateFailed     = "failed"
)

// Checkout precondition errors. These are reported to the user before
// any store call is made.
var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingContactFields = errors.New("name, phone and address are required")
	ErrSubmitInProgress     = errors.New("order submission already in progress")
	ErrFormNotOpen          = errors.New("checkout form is not open")
)

// EventPublisher publishes storefront events. *rabbitmq.Client
// satisfies it; services tolerate a nil publisher.
type EventPublisher interface {
	Publish(queue string, event map[string]interface{}) error
}

// CheckoutSession is one user's trip through the checkout form:
// Idle -> FormOpen -> Submitting -> Success or Failed. A Failed
// session keeps its lines and accepts another Submit, so the cart and
// form survive for a retry.
type CheckoutSession struct {
	UserID    string
	UserEmail string
	Lines     []models.CartLine
	State     string
}

// CheckoutService turns a cart into an order.
type CheckoutService struct {
	orderRepo repositories.OrderRepository
	cartRepo  repositories.CartRepository
	events    EventPublisher
}

// NewCheckoutService creates a new CheckoutService. The event
// publisher may be nil; order events are then skipped.
func NewCheckoutService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, events EventPublisher) *CheckoutService {
	return &CheckoutService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		events:    events,
	}
}

// Open starts a checkout session. It requires an authenticated
// identity and a non-empty cart; otherwise the session never leaves
// Idle and the caller gets the precondition error to surface.
func (s *CheckoutService) Open(userID, userEmail string) (*CheckoutSession, error) {
	if userID == "" {
		return nil, ErrNotSignedIn
	}

	cart, err := s.cartRepo.Get(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	lines := make([]models.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)

	return &CheckoutSession{
		UserID:    userID,
		UserEmail: userEmail,
		Lines:     lines,
		State:     CheckoutStateFormOpen,
	}, nil
}

// Submit validates the contact form, snapshots the session's lines
// into an immutable order and persists it with status "pending".
//
// On success the cart is cleared and the session reaches Success. On a
// store failure the session moves to Failed with its lines intact and
// may be submitted again, so the user retries without re-entering
// anything; nothing is partially persisted. There is no idempotency
// key, so a retry after a false-negative failure can create a
// duplicate order.
func (s *CheckoutService) Submit(session *CheckoutSession, contact models.CustomerInfo) (*models.Order, error) {
	switch session.State {
	case CheckoutStateSubmitting:
		return nil, ErrSubmitInProgress
	case CheckoutStateFormOpen, CheckoutStateFailed:
	default:
		return nil, ErrFormNotOpen
	}

	if strings.TrimSpace(contact.Name) == "" ||
		strings.TrimSpace(contact.Phone) == "" ||
		strings.TrimSpace(contact.Address) == "" {
		return nil, ErrMissingContactFields
	}

	session.State = CheckoutStateSubmitting

	items := make([]models.OrderItem, 0, len(session.Lines))
	totalItems := 0
	totalPrice := 0.0
	for _, line := range session.Lines {
		color := line.Color
		if color == "" {
			color = "Не вказано"
		}
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Storage:   line.Storage,
			Color:     color,
			Price:     line.UnitPrice,
			Quantity:  line.Quantity,
			Image:     line.Image,
		})
		totalItems += line.Quantity
		totalPrice += line.Subtotal()
	}

	order := &models.Order{
		ID:           uuid.New().String(),
		UserID:       session.UserID,
		UserEmail:    session.UserEmail,
		CustomerInfo: contact,
		Items:        items,
		TotalItems:   totalItems,
		TotalPrice:   totalPrice,
		Status:       models.OrderStatusPending,
	}

	if err := s.orderRepo.Create(order); err != nil {
		session.State = CheckoutStateFailed
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// The order stands even if cleanup stumbles from here on.
	if err := s.cartRepo.Delete(session.UserID); err != nil {
		log.Printf("Warning: failed to clear cart for user %s after order %s: %v", session.UserID, order.ID, err)
	}

	if s.events != nil {
		event := map[string]interface{}{
			"orderID": order.ID,
			"userID":  order.UserID,
			"status":  order.Status,
			"total":   order.TotalPrice,
		}
		if err := s.events.Publish(rabbitmq.OrderQueue, event); err != nil {
			log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	session.State = CheckoutStateSuccess
	return order, nil
}
