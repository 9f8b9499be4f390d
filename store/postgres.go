package store

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	models "github.com/Dawood573189/simple-online-shop/model"
)

// LoadCatalog reads the products table once and returns an immutable
// in-memory catalog. Nothing touches the database after this returns.
func LoadCatalog(db *sql.DB) (*MemoryCatalog, error) {
	rows, err := db.Query(`SELECT id, name, price FROM products ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	defer rows.Close()

	out := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, errors.Wrap(err, "scan product row")
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "read product rows")
	}
	return NewMemoryCatalog(out), nil
}
