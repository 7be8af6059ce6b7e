package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem una entrada del carrito: producto, cantidad y precio unitario.
type CartItem struct {
	ProductID string          `json:"id" validate:"required"`
	Quantity  int             `json:"qty" validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest entrada para confirmar una orden. UserID vacío = invitado.
type CreateOrderRequest struct {
	CustomerName string     `json:"customer_name" validate:"required,min=1,max=200"`
	UserID       string     `json:"user_id"`
	Items        []CartItem `json:"items" validate:"required,min=1,dive"`
}

// CreateOrderResponse salida con el ID de la orden creada.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// OrderSummary fila del historial de órdenes.
type OrderSummary struct {
	OrderID      string          `json:"order_id"`
	OrderDate    time.Time       `json:"order_date"`
	Total        decimal.Decimal `json:"total"`
	CustomerName string          `json:"customer_name"`
}

// OrderItemResponse línea de orden enriquecida con datos del producto.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
}
