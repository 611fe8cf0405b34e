package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/usecase"
)

// OrderHandler historiales de órdenes de compra y de venta (solo lectura).
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// ListPurchaseOrders godoc
// @Summary      Historial de compras
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Número de orden o nombre del agricultor"
// @Param        status  query  string  false  "unpaid | paid | completed | pending | not received"
// @Success      200  {object}  dto.ListResponse[dto.PurchaseOrderResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [get]
func (h *OrderHandler) ListPurchaseOrders(c *fiber.Ctx) error {
	var q dto.OrderQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.ListPurchaseOrders(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

// GetPurchaseOrder godoc
// @Summary      Detalle de una orden de compra
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        number  path  string  true  "Número de orden (PO001)"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{number} [get]
func (h *OrderHandler) GetPurchaseOrder(c *fiber.Ctx) error {
	out, err := h.uc.GetPurchaseOrder(c.UserContext(), c.Params("number"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListSalesOrders godoc
// @Summary      Historial de ventas
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Número de orden o nombre del cliente"
// @Param        status  query  string  false  "Estado de pago: Paid | Unpaid"
// @Success      200  {object}  dto.ListResponse[dto.SalesOrderResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales-orders [get]
func (h *OrderHandler) ListSalesOrders(c *fiber.Ctx) error {
	var q dto.OrderQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.ListSalesOrders(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

// PendingPayment godoc
// @Summary      Ventas entregadas pendientes de cobro
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.SalesOrderResponse]
// @Router       /api/sales-orders/pending-payment [get]
func (h *OrderHandler) PendingPayment(c *fiber.Ctx) error {
	out, err := h.uc.PendingPaymentSalesOrders(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

// GetSalesOrder godoc
// @Summary      Detalle de una orden de venta
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        number  path  string  true  "Número de orden"
// @Success      200  {object}  dto.SalesOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-orders/{number} [get]
func (h *OrderHandler) GetSalesOrder(c *fiber.Ctx) error {
	out, err := h.uc.GetSalesOrder(c.UserContext(), c.Params("number"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
