package entity

// Category representa una categoría de productos con su orden de aparición.
type Category struct {
	ID       string
	Name     string
	SortCode int // orden de la categoría en el catálogo
}
