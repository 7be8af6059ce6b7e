package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL (solo lectura).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de lectura del catálogo.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListProducts devuelve los productos del dealer con el nombre de su categoría,
// ordenados por sortcode de categoría y luego nombre de producto.
func (r *CatalogRepo) ListProducts(dealerID string) ([]*entity.CatalogProduct, error) {
	query := `
		SELECT p.id, p.name, p.price, p.img, c.cname AS category
		FROM products p
		JOIN category c ON c.id = p.category
		WHERE p.dealer_id = $1
		ORDER BY c.sortcode, p.name`
	rows, err := r.q.Query(context.Background(), query, dealerID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogProduct
	for rows.Next() {
		var p entity.CatalogProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Category); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
