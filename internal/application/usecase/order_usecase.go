package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// OrderUseCase historiales de compras y ventas. Crear, cobrar, recibir y despachar
// órdenes sigue en el backend; la consola solo consulta.
type OrderUseCase struct {
	gateway ports.OrderGateway
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(gateway ports.OrderGateway) *OrderUseCase {
	return &OrderUseCase{gateway: gateway}
}

// ListPurchaseOrders historial de compras, de la más reciente a la más antigua.
func (uc *OrderUseCase) ListPurchaseOrders(ctx context.Context, q dto.OrderQuery) ([]dto.PurchaseOrderResponse, error) {
	f, err := orderFilter(q)
	if err != nil {
		return nil, err
	}
	orders, err := uc.gateway.ListPurchaseOrders(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toPurchaseOrderResponse(&orders[i]))
	}
	return out, nil
}

// GetPurchaseOrder detalle de una orden de compra.
func (uc *OrderUseCase) GetPurchaseOrder(ctx context.Context, number string) (*dto.PurchaseOrderResponse, error) {
	number, err := requireID(number)
	if err != nil {
		return nil, err
	}
	po, err := uc.gateway.GetPurchaseOrder(ctx, number)
	if err != nil {
		return nil, err
	}
	resp := toPurchaseOrderResponse(po)
	return &resp, nil
}

// ListSalesOrders historial de ventas; status filtra por estado de pago.
func (uc *OrderUseCase) ListSalesOrders(ctx context.Context, q dto.OrderQuery) ([]dto.SalesOrderResponse, error) {
	f, err := orderFilter(q)
	if err != nil {
		return nil, err
	}
	orders, err := uc.gateway.ListSalesOrders(ctx, f)
	if err != nil {
		return nil, err
	}
	return toSalesOrderResponses(orders), nil
}

// PendingPaymentSalesOrders ventas entregadas que el Contador aún debe cobrar.
func (uc *OrderUseCase) PendingPaymentSalesOrders(ctx context.Context) ([]dto.SalesOrderResponse, error) {
	orders, err := uc.gateway.ListSalesOrdersPendingPayment(ctx)
	if err != nil {
		return nil, err
	}
	return toSalesOrderResponses(orders), nil
}

// GetSalesOrder detalle de una orden de venta.
func (uc *OrderUseCase) GetSalesOrder(ctx context.Context, number string) (*dto.SalesOrderResponse, error) {
	number, err := requireID(number)
	if err != nil {
		return nil, err
	}
	so, err := uc.gateway.GetSalesOrder(ctx, number)
	if err != nil {
		return nil, err
	}
	resp := toSalesOrderResponse(so)
	return &resp, nil
}

func orderFilter(q dto.OrderQuery) (ports.OrderFilter, error) {
	q.Search, q.Status = strings.TrimSpace(q.Search), strings.TrimSpace(q.Status)
	if err := dto.Validate(q); err != nil {
		return ports.OrderFilter{}, err
	}
	return ports.OrderFilter{Search: q.Search, Status: q.Status}, nil
}

func toOrderItemResponses(items []entity.OrderItem) []dto.OrderItemResponse {
	out := make([]dto.OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.OrderItemResponse{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			PricePerUnit: it.PricePerUnit,
		})
	}
	return out
}

func toPurchaseOrderResponse(po *entity.PurchaseOrder) dto.PurchaseOrderResponse {
	return dto.PurchaseOrderResponse{
		Number:        po.Number,
		FarmerID:      po.FarmerID,
		FarmerName:    po.FarmerName,
		Date:          po.Date,
		TotalPrice:    po.TotalPrice,
		PaymentStatus: po.PaymentStatus,
		StockStatus:   po.StockStatus,
		CreatedBy:     po.CreatedBy,
		PaidBy:        po.PaidBy,
		ReceivedBy:    po.ReceivedBy,
		PaidDate:      po.PaidDate,
		ReceivedDate:  po.ReceivedDate,
		Items:         toOrderItemResponses(po.Items),
	}
}

func toSalesOrderResponse(so *entity.SalesOrder) dto.SalesOrderResponse {
	return dto.SalesOrderResponse{
		Number:         so.Number,
		CustomerName:   so.CustomerName,
		Date:           so.Date,
		TotalPrice:     so.TotalPrice,
		ShipmentStatus: so.ShipmentStatus,
		DeliveryStatus: so.DeliveryStatus,
		PaymentStatus:  so.PaymentStatus,
		Items:          toOrderItemResponses(so.Items),
	}
}

func toSalesOrderResponses(orders []entity.SalesOrder) []dto.SalesOrderResponse {
	out := make([]dto.SalesOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toSalesOrderResponse(&orders[i]))
	}
	return out
}
