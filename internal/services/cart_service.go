package services

import (
	"errors"
	"fmt"

	"github.com/davidparhut/iBoss/internal/models"
	"github.com/davidparhut/iBoss/internal/repositories"
)

// ErrNotSignedIn is returned when an operation that requires an
// authenticated identity is attempted without one.
var ErrNotSignedIn = errors.New("sign in required")

// CartService manages the per-user persisted cart. Every mutation
// writes the full line list back under the owner's user ID, so one
// identity's cart can never leak into another session.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Get returns the user's current cart. A user with no persisted cart
// gets an empty one.
func (s *CartService) Get(userID string) (*models.Cart, error) {
	if userID == "" {
		return nil, ErrNotSignedIn
	}
	return s.cartRepo.Get(userID)
}

// AddLine adds one unit of the selected product variant to the cart.
// A missing or invalid color/storage selection falls back to the
// product's first available option (or its legacy single-variant
// fields); the unit price is resolved for the chosen storage at this
// moment. A line with the same (product, color, storage) key has its
// quantity incremented instead of being duplicated.
func (s *CartService) AddLine(userID, productID, color, storage string) (*models.Cart, error) {
	if userID == "" {
		return nil, ErrNotSignedIn
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	if storage == "" || !product.HasStorage(storage) {
		storage = product.DefaultStorage()
	}
	if color == "" || !product.HasColor(color) {
		color = product.DefaultColor()
	}

	cart, err := s.cartRepo.Get(userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Lines {
		if cart.Lines[i].SameVariant(productID, color, storage) {
			cart.Lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Color:     color,
			Storage:   storage,
			UnitPrice: product.ResolvePrice(storage),
			Quantity:  1,
			Image:     product.Image,
		})
	}

	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return cart, nil
}

// RemoveLine removes the line matching the exact (product, color,
// storage) key. Removing an absent line is a no-op, not an error.
func (s *CartService) RemoveLine(userID, productID, color, storage string) (*models.Cart, error) {
	if userID == "" {
		return nil, ErrNotSignedIn
	}

	cart, err := s.cartRepo.Get(userID)
	if err != nil {
		return nil, err
	}

	kept := make([]models.CartLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		if !line.SameVariant(productID, color, storage) {
			kept = append(kept, line)
		}
	}
	cart.Lines = kept

	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return cart, nil
}

// SetQuantity overwrites the quantity of the matching line. A quantity
// of zero or less removes the line.
func (s *CartService) SetQuantity(userID, productID string, quantity int, color, storage string) (*models.Cart, error) {
	if quantity <= 0 {
		return s.RemoveLine(userID, productID, color, storage)
	}
	if userID == "" {
		return nil, ErrNotSignedIn
	}

	cart, err := s.cartRepo.Get(userID)
	if err != nil {
		return nil, err
	}

	for i := range cart.Lines {
		if cart.Lines[i].SameVariant(productID, color, storage) {
			cart.Lines[i].Quantity = quantity
			break
		}
	}

	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return cart, nil
}

// Clear empties the cart and erases its persisted row.
func (s *CartService) Clear(userID string) error {
	if userID == "" {
		return ErrNotSignedIn
	}
	return s.cartRepo.Delete(userID)
}
