package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

var (
	_ ports.OrderGateway     = (*Client)(nil)
	_ ports.ExecutiveGateway = (*Client)(nil)
)

type orderItemWire struct {
	ProductID    flexString      `json:"p_id"`
	ProductName  string          `json:"product_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

func toOrderItems(wire []orderItemWire) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(wire))
	for _, w := range wire {
		out = append(out, entity.OrderItem{
			ProductID:    string(w.ProductID),
			ProductName:  w.ProductName,
			Quantity:     w.Quantity,
			PricePerUnit: w.PricePerUnit,
		})
	}
	return out
}

type purchaseOrderWire struct {
	Number        flexString      `json:"purchase_order_number"`
	FarmerID      flexString      `json:"f_id"`
	FarmerName    *string         `json:"farmer_name"`
	Date          flexTime        `json:"b_date"`
	TotalPrice    decimal.Decimal `json:"b_total_price"`
	PaymentStatus *string         `json:"payment_status"`
	StockStatus   *string         `json:"stock_status"`
	CreatedBy     *string         `json:"created_by_name"`
	PaidBy        *string         `json:"paid_by_name"`
	ReceivedBy    *string         `json:"received_by_name"`
	PaidDate      flexTime        `json:"paid_date"`
	ReceivedDate  flexTime        `json:"received_date"`
	Items         []orderItemWire `json:"items"`
}

func (w purchaseOrderWire) toEntity() entity.PurchaseOrder {
	return entity.PurchaseOrder{
		Number:        string(w.Number),
		FarmerID:      string(w.FarmerID),
		FarmerName:    deref(w.FarmerName),
		Date:          w.Date.Time(),
		TotalPrice:    w.TotalPrice,
		PaymentStatus: deref(w.PaymentStatus),
		StockStatus:   deref(w.StockStatus),
		CreatedBy:     deref(w.CreatedBy),
		PaidBy:        deref(w.PaidBy),
		ReceivedBy:    deref(w.ReceivedBy),
		PaidDate:      w.PaidDate.Time(),
		ReceivedDate:  w.ReceivedDate.Time(),
		Items:         toOrderItems(w.Items),
	}
}

type salesOrderWire struct {
	Number         flexString      `json:"sale_order_number"`
	CustomerName   *string         `json:"customer_name"`
	Date           flexTime        `json:"s_date"`
	TotalPrice     decimal.Decimal `json:"s_total_price"`
	ShipmentStatus *string         `json:"shipment_status"`
	DeliveryStatus *string         `json:"delivery_status"`
	PaymentStatus  *string         `json:"payment_status"`
	Items          []orderItemWire `json:"items"`
}

func (w salesOrderWire) toEntity() entity.SalesOrder {
	return entity.SalesOrder{
		Number:         string(w.Number),
		CustomerName:   deref(w.CustomerName),
		Date:           w.Date.Time(),
		TotalPrice:     w.TotalPrice,
		ShipmentStatus: deref(w.ShipmentStatus),
		DeliveryStatus: deref(w.DeliveryStatus),
		PaymentStatus:  deref(w.PaymentStatus),
		Items:          toOrderItems(w.Items),
	}
}

// deref los campos nulos del backend (joins sin fila) se tratan como vacíos.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func filterQuery(f ports.OrderFilter) url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	return q
}

// ── Compras ─────────────────────────────────────────────────────────────────

// ListPurchaseOrders GET /purchaseorders?search&status.
func (c *Client) ListPurchaseOrders(ctx context.Context, f ports.OrderFilter) ([]entity.PurchaseOrder, error) {
	var wire []purchaseOrderWire
	if err := c.do(ctx, http.MethodGet, "/purchaseorders", filterQuery(f), nil, &wire); err != nil {
		return nil, fmt.Errorf("listar órdenes de compra: %w", err)
	}
	out := make([]entity.PurchaseOrder, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// GetPurchaseOrder GET /purchaseorders/{number}.
func (c *Client) GetPurchaseOrder(ctx context.Context, number string) (*entity.PurchaseOrder, error) {
	var w purchaseOrderWire
	if err := c.do(ctx, http.MethodGet, resourcePath("/purchaseorders", number), nil, nil, &w); err != nil {
		return nil, fmt.Errorf("obtener orden de compra %s: %w", number, err)
	}
	po := w.toEntity()
	return &po, nil
}

// ── Ventas ──────────────────────────────────────────────────────────────────

// ListSalesOrders GET /salesorders?search&status (status = estado de pago).
func (c *Client) ListSalesOrders(ctx context.Context, f ports.OrderFilter) ([]entity.SalesOrder, error) {
	return c.listSalesOrders(ctx, "/salesorders", filterQuery(f))
}

// ListSalesOrdersPendingPayment GET /salesorders/pending-payment.
func (c *Client) ListSalesOrdersPendingPayment(ctx context.Context) ([]entity.SalesOrder, error) {
	return c.listSalesOrders(ctx, "/salesorders/pending-payment", nil)
}

func (c *Client) listSalesOrders(ctx context.Context, path string, q url.Values) ([]entity.SalesOrder, error) {
	var wire []salesOrderWire
	if err := c.do(ctx, http.MethodGet, path, q, nil, &wire); err != nil {
		return nil, fmt.Errorf("listar órdenes de venta: %w", err)
	}
	out := make([]entity.SalesOrder, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// GetSalesOrder GET /salesorders/{number}.
func (c *Client) GetSalesOrder(ctx context.Context, number string) (*entity.SalesOrder, error) {
	var w salesOrderWire
	if err := c.do(ctx, http.MethodGet, resourcePath("/salesorders", number), nil, nil, &w); err != nil {
		return nil, fmt.Errorf("obtener orden de venta %s: %w", number, err)
	}
	so := w.toEntity()
	return &so, nil
}

// ── Tablero ejecutivo ───────────────────────────────────────────────────────

type executiveWire struct {
	KPIs struct {
		TotalRevenue      decimal.Decimal `json:"total_revenue"`
		GrossProfit       decimal.Decimal `json:"gross_profit"`
		TotalPurchaseCost decimal.Decimal `json:"total_purchase_cost"`
		CurrentStockValue decimal.Decimal `json:"current_stock_value"`
	} `json:"kpis"`
	ChartData []struct {
		Date      string          `json:"date"`
		Sales     decimal.Decimal `json:"sales"`
		Purchases decimal.Decimal `json:"purchases"`
	} `json:"chart_data"`
	RecentSales     []salesOrderWire    `json:"recent_sales"`
	RecentPurchases []purchaseOrderWire `json:"recent_purchases"`
}

// GetExecutiveSummary GET /executive/dashboard-summary.
func (c *Client) GetExecutiveSummary(ctx context.Context) (*entity.ExecutiveSummary, error) {
	var w executiveWire
	if err := c.do(ctx, http.MethodGet, "/executive/dashboard-summary", nil, nil, &w); err != nil {
		return nil, fmt.Errorf("resumen ejecutivo: %w", err)
	}

	out := &entity.ExecutiveSummary{
		KPIs: entity.ExecutiveKPIs{
			TotalRevenue:      w.KPIs.TotalRevenue,
			GrossProfit:       w.KPIs.GrossProfit,
			TotalPurchaseCost: w.KPIs.TotalPurchaseCost,
			CurrentStockValue: w.KPIs.CurrentStockValue,
		},
		SalesChart:      make(map[string]decimal.Decimal, len(w.ChartData)),
		PurchaseChart:   make(map[string]decimal.Decimal, len(w.ChartData)),
		RecentSales:     make([]entity.SalesOrder, 0, len(w.RecentSales)),
		RecentPurchases: make([]entity.PurchaseOrder, 0, len(w.RecentPurchases)),
	}
	for _, p := range w.ChartData {
		out.SalesChart[p.Date] = p.Sales
		out.PurchaseChart[p.Date] = p.Purchases
	}
	for _, so := range w.RecentSales {
		out.RecentSales = append(out.RecentSales, so.toEntity())
	}
	for _, po := range w.RecentPurchases {
		out.RecentPurchases = append(out.RecentPurchases, po.toEntity())
	}
	return out, nil
}
