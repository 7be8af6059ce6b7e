package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/orders"
	"github.com/jhoicas/storefront-api/internal/domain"
)

// OrderHandler maneja confirmación de órdenes, historial, detalle y comprobante.
type OrderHandler struct {
	createUC  *orders.CreateOrderUseCase
	queryUC   *orders.OrderQueryUseCase
	receiptUC *orders.ReceiptUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(createUC *orders.CreateOrderUseCase, queryUC *orders.OrderQueryUseCase, receiptUC *orders.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{createUC: createUC, queryUC: queryUC, receiptUC: receiptUC}
}

// Create godoc
// @Summary      Confirmar una orden (carrito completo, atómico)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "customer_name, items, user_id opcional"
// @Success      201   {object}  dto.CreateOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "falta el nombre del cliente o el carrito"})
	}
	out, err := h.createUC.CreateOrder(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "falta el nombre del cliente o el carrito"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByUser godoc
// @Summary      Historial de órdenes del usuario autenticado
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        user_id  path  string  true  "ID del usuario"
// @Success      200  {array}  dto.OrderSummary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/orders/{user_id} [get]
func (h *OrderHandler) ListByUser(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	// El historial solo lo ve su dueño.
	if GetUserID(c) != userID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puedes ver tus propias órdenes"})
	}
	list, err := h.queryUC.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ListItems godoc
// @Summary      Líneas de una orden con nombre e imagen del producto
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        order_id  path  string  true  "ID de la orden"
// @Success      200  {array}  dto.OrderItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{order_id}/items [get]
func (h *OrderHandler) ListItems(c *fiber.Ctx) error {
	orderID := c.Params("order_id")
	items, err := h.queryUC.ListItems(orderID, GetUserID(c))
	if err != nil {
		return orderReadError(c, err)
	}
	return c.JSON(items)
}

// Receipt godoc
// @Summary      Comprobante PDF de una orden
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        order_id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{order_id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	orderID := c.Params("order_id")
	pdfBytes, err := h.receiptUC.GenerateReceipt(c.Context(), orderID, GetUserID(c))
	if err != nil {
		return orderReadError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="orden-`+orderID+`.pdf"`)
	return c.Send(pdfBytes)
}

// orderReadError mapea los errores de lectura de órdenes a HTTP.
func orderReadError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrOrderNotFound, domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la orden pertenece a otro usuario"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
