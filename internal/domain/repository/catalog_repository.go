package repository

import "github.com/jhoicas/storefront-api/internal/domain/entity"

// CatalogRepository define el puerto de lectura del catálogo (DIP).
type CatalogRepository interface {
	// ListProducts devuelve los productos del dealer con el nombre de su
	// categoría, ordenados por sortcode de categoría y luego nombre de producto.
	ListProducts(dealerID string) ([]*entity.CatalogProduct, error)
}
