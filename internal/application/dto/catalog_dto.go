package dto

import "github.com/shopspring/decimal"

// CatalogProductResponse fila del catálogo: producto + nombre de categoría.
type CatalogProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
}
