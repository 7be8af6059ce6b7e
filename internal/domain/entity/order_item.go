package entity

import "github.com/shopspring/decimal"

// OrderItem es una línea de la orden. Pertenece exactamente a una Order y no
// tiene ciclo de vida propio: se inserta dentro de la misma transacción que la
// cabecera y es inmutable después.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int             // entero positivo
	UnitPrice decimal.Decimal // precio capturado al momento de la orden
}

// OrderItemDetail es una línea enriquecida con datos del producto para lecturas.
type OrderItemDetail struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Image     string
}
