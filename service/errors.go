package service

import "errors"

// User-facing cart errors. All are recoverable; the handler surfaces
// the message directly and takes no corrective action.
var (
	// ErrInvalidProduct is returned when a product id is not in the catalog.
	ErrInvalidProduct = errors.New("invalid product id")

	// ErrInvalidQuantity is returned when a quantity <= 0 is supplied.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrItemNotFound is returned when removing a product with no cart line.
	ErrItemNotFound = errors.New("item not found in cart")
)
