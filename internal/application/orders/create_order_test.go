package orders_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/orders"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

const testDealerID = "1"

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: repositorio en memoria + runner transaccional que simula
// commit/rollback (los escritos solo se vuelven visibles si fn no falla).
// ──────────────────────────────────────────────────────────────────────────────

type memOrderRepo struct {
	orders []*entity.Order
	items  []*entity.OrderItem

	failItemAt int // índice (1-based) de CreateItem que debe fallar; 0 = nunca
	itemCalls  int
}

func (r *memOrderRepo) Create(order *entity.Order) error {
	cp := *order
	r.orders = append(r.orders, &cp)
	return nil
}

func (r *memOrderRepo) CreateItem(item *entity.OrderItem) error {
	r.itemCalls++
	if r.failItemAt > 0 && r.itemCalls == r.failItemAt {
		return errors.New("insert order item: falla simulada")
	}
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *memOrderRepo) GetByID(orderID, dealerID string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.ID == orderID && o.DealerID == dealerID {
			return o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) ListByUser(userID, dealerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.UserID != nil && *o.UserID == userID && o.DealerID == dealerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) ListItems(orderID, dealerID string) ([]*entity.OrderItemDetail, error) {
	var out []*entity.OrderItemDetail
	for _, it := range r.items {
		if it.OrderID == orderID {
			out = append(out, &entity.OrderItemDetail{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta fn contra un repo de staging; si fn retorna error, los
// escritos se descartan (rollback). Si no, se publican al repo visible (commit).
type fakeTxRunner struct {
	visible *memOrderRepo
	runs    int

	failItemAt int
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	f.runs++
	staging := &memOrderRepo{failItemAt: f.failItemAt}
	if err := fn(staging); err != nil {
		return err // rollback: nada se publica
	}
	f.visible.orders = append(f.visible.orders, staging.orders...)
	f.visible.items = append(f.visible.items, staging.items...)
	return nil
}

func cartItem(id string, qty int, price string) dto.CartItem {
	return dto.CartItem{ProductID: id, Quantity: qty, Price: decimal.RequireFromString(price)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateOrder
// ──────────────────────────────────────────────────────────────────────────────

// Carrito válido: una cabecera, una línea por entrada y total = Σ precio×cantidad.
func TestCreateOrder_CarritoValido(t *testing.T) {
	visible := &memOrderRepo{}
	runner := &fakeTxRunner{visible: visible}
	uc := orders.NewCreateOrderUseCase(runner, testDealerID)

	out, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerName: "Laura Pérez",
		UserID:       "user-1",
		Items: []dto.CartItem{
			cartItem("prod-1", 2, "10.00"),
			cartItem("prod-2", 1, "5.50"),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.OrderID)

	require.Len(t, visible.orders, 1, "debe existir exactamente una cabecera")
	require.Len(t, visible.items, 2, "debe existir una línea por entrada del carrito")

	order := visible.orders[0]
	assert.Equal(t, out.OrderID, order.ID)
	assert.Equal(t, testDealerID, order.DealerID)
	require.NotNil(t, order.UserID)
	assert.Equal(t, "user-1", *order.UserID)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("25.50")),
		"total debe ser 25.50, fue %s", order.Total)

	for _, it := range visible.items {
		assert.Equal(t, order.ID, it.OrderID, "toda línea referencia a su cabecera")
	}
}

// Checkout de invitado: sin user_id la cabecera queda sin dueño.
func TestCreateOrder_Invitado(t *testing.T) {
	visible := &memOrderRepo{}
	uc := orders.NewCreateOrderUseCase(&fakeTxRunner{visible: visible}, testDealerID)

	_, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerName: "Invitado",
		Items:        []dto.CartItem{cartItem("prod-1", 1, "3.00")},
	})
	require.NoError(t, err)
	require.Len(t, visible.orders, 1)
	assert.Nil(t, visible.orders[0].UserID)
}

// Si una línea falla, rollback completo: ni cabecera ni líneas visibles.
func TestCreateOrder_FallaLinea_RollbackCompleto(t *testing.T) {
	visible := &memOrderRepo{}
	runner := &fakeTxRunner{visible: visible, failItemAt: 2}
	uc := orders.NewCreateOrderUseCase(runner, testDealerID)

	_, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerName: "Laura Pérez",
		Items: []dto.CartItem{
			cartItem("prod-1", 2, "10.00"),
			cartItem("prod-2", 1, "5.50"),
		},
	})
	require.Error(t, err)
	assert.Empty(t, visible.orders, "la cabecera no debe quedar visible tras rollback")
	assert.Empty(t, visible.items, "ninguna línea debe quedar visible tras rollback")
}

// Carrito vacío o nombre en blanco: rechazo antes de abrir la transacción.
func TestCreateOrder_ValidacionAntesDeEscribir(t *testing.T) {
	cases := []struct {
		name string
		in   dto.CreateOrderRequest
	}{
		{"carrito vacío", dto.CreateOrderRequest{CustomerName: "Laura"}},
		{"nombre en blanco", dto.CreateOrderRequest{
			CustomerName: "   ",
			Items:        []dto.CartItem{cartItem("prod-1", 1, "1.00")},
		}},
		{"cantidad cero", dto.CreateOrderRequest{
			CustomerName: "Laura",
			Items:        []dto.CartItem{cartItem("prod-1", 0, "1.00")},
		}},
		{"precio negativo", dto.CreateOrderRequest{
			CustomerName: "Laura",
			Items:        []dto.CartItem{cartItem("prod-1", 1, "-1.00")},
		}},
		{"producto vacío", dto.CreateOrderRequest{
			CustomerName: "Laura",
			Items:        []dto.CartItem{cartItem("", 1, "1.00")},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			visible := &memOrderRepo{}
			runner := &fakeTxRunner{visible: visible}
			uc := orders.NewCreateOrderUseCase(runner, testDealerID)

			_, err := uc.CreateOrder(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, runner.runs, "no debe abrirse transacción alguna")
			assert.Empty(t, visible.orders)
			assert.Empty(t, visible.items)
		})
	}
}

// El total usa el precio enviado por el cliente tal cual (sin re-pricing).
func TestCreateOrder_TotalConPrecioDelCliente(t *testing.T) {
	visible := &memOrderRepo{}
	uc := orders.NewCreateOrderUseCase(&fakeTxRunner{visible: visible}, testDealerID)

	_, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerName: "Laura",
		Items: []dto.CartItem{
			cartItem("prod-1", 3, "0.10"),
			cartItem("prod-2", 1, "0.00"), // precio cero permitido
		},
	})
	require.NoError(t, err)
	require.Len(t, visible.orders, 1)
	assert.True(t, visible.orders[0].Total.Equal(decimal.RequireFromString("0.30")))
}
