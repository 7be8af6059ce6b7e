package orders

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una orden (cabecera + líneas).
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	generator ReceiptPDFGenerator
	dealerID  string
	storeName string
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orderRepo repository.OrderRepository, generator ReceiptPDFGenerator, dealerID, storeName string) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, generator: generator, dealerID: dealerID, storeName: storeName}
}

// GenerateReceipt devuelve los bytes del PDF. ErrOrderNotFound si la orden no
// existe en el dealer; ErrForbidden si pertenece a otro usuario.
func (uc *ReceiptUseCase) GenerateReceipt(ctx context.Context, orderID, requesterID string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(orderID, uc.dealerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if order.UserID != nil && *order.UserID != requesterID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.orderRepo.ListItems(orderID, uc.dealerID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateReceiptPDF(ctx, uc.storeName, order, items)
}
