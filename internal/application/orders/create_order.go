package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// CreateOrderUseCase confirma un carrito: valida, calcula el total y persiste
// cabecera y líneas como una sola transacción. El precio unitario es el que
// envía el cliente; no se recalcula contra el catálogo (ver DESIGN.md).
type CreateOrderUseCase struct {
	txRunner TxRunner
	dealerID string
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(txRunner TxRunner, dealerID string) *CreateOrderUseCase {
	return &CreateOrderUseCase{txRunner: txRunner, dealerID: dealerID}
}

// CreateOrder valida el carrito y escribe la orden completa o nada.
// Retorna el ID generado de la orden.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if strings.TrimSpace(in.CustomerName) == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	// total = Σ precio × cantidad sobre las entradas del carrito
	total := decimal.Zero
	for _, item := range in.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	var userID *string
	if in.UserID != "" {
		userID = &in.UserID
	}
	order := &entity.Order{
		ID:           uuid.New().String(),
		DealerID:     uc.dealerID,
		UserID:       userID,
		CustomerName: in.CustomerName,
		Total:        total,
		OrderDate:    time.Now(),
	}

	// Cabecera y líneas en una sola transacción: si cualquier insert falla,
	// rollback completo y ninguna fila parcial queda visible.
	err := uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, item := range in.Items {
			detail := &entity.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.Price,
			}
			if err := orderRepo.CreateItem(detail); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateOrderResponse{OrderID: order.ID}, nil
}
