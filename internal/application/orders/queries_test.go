package orders_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/orders"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

func seedOrder(repo *memOrderRepo, id string, userID *string) {
	repo.orders = append(repo.orders, &entity.Order{
		ID:           id,
		DealerID:     testDealerID,
		UserID:       userID,
		CustomerName: "Laura Pérez",
		Total:        decimal.RequireFromString("25.50"),
		OrderDate:    time.Now(),
	})
	repo.items = append(repo.items, &entity.OrderItem{
		ID:        id + "-item",
		OrderID:   id,
		ProductID: "prod-1",
		Quantity:  2,
		UnitPrice: decimal.RequireFromString("10.00"),
	})
}

func TestListItems_DuenoVeSusLineas(t *testing.T) {
	repo := &memOrderRepo{}
	owner := "user-1"
	seedOrder(repo, "order-1", &owner)
	uc := orders.NewOrderQueryUseCase(repo, testDealerID)

	items, err := uc.ListItems("order-1", "user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "prod-1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("10.00")))
}

func TestListItems_OrdenAjena_Forbidden(t *testing.T) {
	repo := &memOrderRepo{}
	owner := "user-1"
	seedOrder(repo, "order-1", &owner)
	uc := orders.NewOrderQueryUseCase(repo, testDealerID)

	_, err := uc.ListItems("order-1", "user-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListItems_OrdenInexistente_NotFound(t *testing.T) {
	uc := orders.NewOrderQueryUseCase(&memOrderRepo{}, testDealerID)

	_, err := uc.ListItems("no-existe", "user-1")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestListByUser_SoloOrdenesDelUsuario(t *testing.T) {
	repo := &memOrderRepo{}
	u1, u2 := "user-1", "user-2"
	seedOrder(repo, "order-1", &u1)
	seedOrder(repo, "order-2", &u2)
	uc := orders.NewOrderQueryUseCase(repo, testDealerID)

	list, err := uc.ListByUser("user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "order-1", list[0].OrderID)
	assert.Equal(t, "Laura Pérez", list[0].CustomerName)
}
