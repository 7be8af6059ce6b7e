package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de la orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO orders (order_id, dealer_id, user_id, customer_name, total, order_date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.DealerID, order.UserID, order.CustomerName,
		order.Total, order.OrderDate,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la orden.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO orders_items (id, order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID dentro del dealer.
func (r *OrderRepo) GetByID(orderID, dealerID string) (*entity.Order, error) {
	query := `
		SELECT order_id, dealer_id, user_id, customer_name, total, order_date
		FROM orders WHERE order_id = $1 AND dealer_id = $2`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, orderID, dealerID).Scan(
		&o.ID, &o.DealerID, &o.UserID, &o.CustomerName, &o.Total, &o.OrderDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListByUser devuelve las órdenes del usuario dentro del dealer, más recientes primero.
func (r *OrderRepo) ListByUser(userID, dealerID string) ([]*entity.Order, error) {
	query := `
		SELECT order_id, dealer_id, user_id, customer_name, total, order_date
		FROM orders
		WHERE user_id = $1 AND dealer_id = $2
		ORDER BY order_date DESC`
	rows, err := r.q.Query(context.Background(), query, userID, dealerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.DealerID, &o.UserID, &o.CustomerName, &o.Total, &o.OrderDate); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// ListItems devuelve las líneas de la orden con nombre e imagen del producto.
// El join con orders aplica el filtro por dealer a la lectura de líneas.
func (r *OrderRepo) ListItems(orderID, dealerID string) ([]*entity.OrderItemDetail, error) {
	query := `
		SELECT oi.product_id, p.name, oi.quantity, oi.price, p.img
		FROM orders_items oi
		JOIN products p ON oi.product_id = p.id
		JOIN orders o ON o.order_id = oi.order_id
		WHERE oi.order_id = $1 AND o.dealer_id = $2`
	rows, err := r.q.Query(context.Background(), query, orderID, dealerID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItemDetail
	for rows.Next() {
		var d entity.OrderItemDetail
		if err := rows.Scan(&d.ProductID, &d.Name, &d.Quantity, &d.UnitPrice, &d.Image); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
