package models

// Product is a catalog entry. Prices are whole rupees.
type Product struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CartLine holds the quantity of a single product in a cart.
// A line with quantity <= 0 must never exist; such lines are removed.
type CartLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Cart is an ordered collection of lines, unique by product id.
// Insertion order is preserved; re-adding a product updates its line in place.
type Cart struct {
	Lines []CartLine `json:"lines"`
}
