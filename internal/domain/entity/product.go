package entity

import "github.com/shopspring/decimal"

// Product representa un artículo del catálogo. Es de solo lectura para este
// sistema: el alta y mantenimiento de productos ocurre fuera de la tienda.
type Product struct {
	ID         string
	DealerID   string
	CategoryID string
	Name       string
	Price      decimal.Decimal // precio de venta, no negativo
	Image      string          // referencia a la imagen del producto
}

// CatalogProduct es la fila del catálogo: producto con el nombre de su categoría.
type CatalogProduct struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Image    string
	Category string
}
