package store

import (
	"sort"

	models "github.com/Dawood573189/simple-online-shop/model"
)

// Catalog is the read-only set of purchasable products. It is populated
// once at startup and safe to share across sessions without locking.
type Catalog interface {
	Get(id int64) (models.Product, bool)
	List() []models.Product
}

// MemoryCatalog is a Catalog backed by an in-memory index.
type MemoryCatalog struct {
	byID    map[int64]models.Product
	ordered []models.Product
}

// NewMemoryCatalog builds a catalog from the given products. Listing order
// is ascending id regardless of input order; duplicate ids keep the last
// entry seen.
func NewMemoryCatalog(products []models.Product) *MemoryCatalog {
	byID := make(map[int64]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	ordered := make([]models.Product, 0, len(byID))
	for _, p := range byID {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })
	return &MemoryCatalog{byID: byID, ordered: ordered}
}

// DefaultCatalog returns the built-in five-product catalog used when no
// database is configured.
func DefaultCatalog() *MemoryCatalog {
	return NewMemoryCatalog([]models.Product{
		{ID: 1, Name: "Laptop", Price: 120000},
		{ID: 2, Name: "Smartphone", Price: 60000},
		{ID: 3, Name: "Headphones", Price: 5000},
		{ID: 4, Name: "Keyboard", Price: 2500},
		{ID: 5, Name: "Mouse", Price: 1500},
	})
}

func (c *MemoryCatalog) Get(id int64) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// List returns the catalog in ascending id order. Callers must not
// mutate the returned slice.
func (c *MemoryCatalog) List() []models.Product {
	return c.ordered
}
