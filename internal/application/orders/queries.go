package orders

import (
	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// OrderQueryUseCase lecturas de órdenes: historial por usuario y detalle de líneas.
type OrderQueryUseCase struct {
	orderRepo repository.OrderRepository
	dealerID  string
}

// NewOrderQueryUseCase construye el caso de uso de lectura.
func NewOrderQueryUseCase(orderRepo repository.OrderRepository, dealerID string) *OrderQueryUseCase {
	return &OrderQueryUseCase{orderRepo: orderRepo, dealerID: dealerID}
}

// ListByUser devuelve el historial del usuario, más recientes primero.
func (uc *OrderQueryUseCase) ListByUser(userID string) ([]dto.OrderSummary, error) {
	list, err := uc.orderRepo.ListByUser(userID, uc.dealerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderSummary, 0, len(list))
	for _, o := range list {
		items = append(items, dto.OrderSummary{
			OrderID:      o.ID,
			OrderDate:    o.OrderDate,
			Total:        o.Total,
			CustomerName: o.CustomerName,
		})
	}
	return items, nil
}

// ListItems devuelve las líneas de una orden con datos del producto.
// Retorna ErrOrderNotFound si la orden no existe en el dealer y ErrForbidden
// si pertenece a otro usuario (las órdenes de invitado no tienen dueño).
func (uc *OrderQueryUseCase) ListItems(orderID, requesterID string) ([]dto.OrderItemResponse, error) {
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
	details, err := uc.orderRepo.ListItems(orderID, uc.dealerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderItemResponse, 0, len(details))
	for _, d := range details {
		items = append(items, dto.OrderItemResponse{
			ProductID: d.ProductID,
			Name:      d.Name,
			Quantity:  d.Quantity,
			Price:     d.UnitPrice,
			Image:     d.Image,
		})
	}
	return items, nil
}
