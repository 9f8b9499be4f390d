package service

import (
	models "github.com/Dawood573189/simple-online-shop/model"
	"github.com/Dawood573189/simple-online-shop/store"
)

// Service is the cart state machine over a read-only catalog. It holds no
// cart state itself; every operation takes the session's cart by reference.
type Service struct {
	catalog store.Catalog
}

func NewService(c store.Catalog) *Service {
	return &Service{catalog: c}
}

// LineDetail is one cart line joined with its catalog entry for display.
type LineDetail struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

// findLine returns the index of the line for productID, or -1.
func findLine(cart *models.Cart, productID int64) int {
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// ListProducts returns the full catalog in ascending id order.
func (s *Service) ListProducts() []models.Product {
	return s.catalog.List()
}

// AddToCart adds qty units of productID to the cart. If the product already
// has a line, its quantity is incremented in place, preserving position;
// otherwise a new line is appended. On error the cart is left unchanged.
func (s *Service) AddToCart(cart *models.Cart, productID int64, qty int) error {
	if _, ok := s.catalog.Get(productID); !ok {
		return ErrInvalidProduct
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	if i := findLine(cart, productID); i >= 0 {
		cart.Lines[i].Quantity += qty
		return nil
	}
	cart.Lines = append(cart.Lines, models.CartLine{ProductID: productID, Quantity: qty})
	return nil
}

// RemoveFromCart removes qty units of productID. Removing at least the
// line's current quantity deletes the line entirely; removing less
// decrements it. Remaining lines keep their order.
func (s *Service) RemoveFromCart(cart *models.Cart, productID int64, qty int) error {
	i := findLine(cart, productID)
	if i < 0 {
		return ErrItemNotFound
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	if qty >= cart.Lines[i].Quantity {
		cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
		return nil
	}
	cart.Lines[i].Quantity -= qty
	return nil
}

// ViewCart resolves each line against the catalog, in cart order. Lines
// whose product no longer resolves are skipped.
func (s *Service) ViewCart(cart *models.Cart) []LineDetail {
	out := make([]LineDetail, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		p, ok := s.catalog.Get(l.ProductID)
		if !ok {
			continue
		}
		out = append(out, LineDetail{
			ProductID: l.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  l.Quantity,
			Subtotal:  p.Price * int64(l.Quantity),
		})
	}
	return out
}

// CalculateTotal sums price*quantity over all resolvable lines.
func (s *Service) CalculateTotal(cart *models.Cart) int64 {
	var total int64
	for _, l := range cart.Lines {
		if p, ok := s.catalog.Get(l.ProductID); ok {
			total += p.Price * int64(l.Quantity)
		}
	}
	return total
}

// Checkout computes the total, then empties the cart and returns the
// pre-clear total. It never fails; checking out an empty cart returns 0.
func (s *Service) Checkout(cart *models.Cart) int64 {
	total := s.CalculateTotal(cart)
	cart.Lines = nil
	return total
}
