package orders

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de base de datos con un
// OrderRepository atado a la tx. Si fn retorna error se hace rollback completo.
type TxRunner interface {
	Run(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}

// ReceiptPDFGenerator genera el comprobante PDF de una orden.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, storeName string, order *entity.Order, items []*entity.OrderItemDetail) ([]byte, error)
}
