package repository

import "github.com/jhoicas/storefront-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas (DIP).
// El adaptador puede ir atado al pool o a una transacción (ver postgres.Querier).
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(orderID, dealerID string) (*entity.Order, error)
	// ListByUser devuelve las órdenes del usuario dentro del dealer, más recientes primero.
	ListByUser(userID, dealerID string) ([]*entity.Order, error)
	// ListItems devuelve las líneas de la orden con nombre e imagen del producto.
	// Se filtra por dealer vía join con la cabecera.
	ListItems(orderID, dealerID string) ([]*entity.OrderItemDetail, error)
}
