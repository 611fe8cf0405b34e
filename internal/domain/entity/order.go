package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem línea de una orden de compra o de venta.
type OrderItem struct {
	ProductID    string
	ProductName  string
	Quantity     decimal.Decimal
	PricePerUnit decimal.Decimal
}

// PurchaseOrder orden de compra a un agricultor (solo lectura; el backend la crea y la cobra).
type PurchaseOrder struct {
	Number        string
	FarmerID      string
	FarmerName    string
	Date          *time.Time
	TotalPrice    decimal.Decimal
	PaymentStatus string
	StockStatus   string
	CreatedBy     string
	PaidBy        string
	ReceivedBy    string
	PaidDate      *time.Time
	ReceivedDate  *time.Time
	Items         []OrderItem
}

// SalesOrder orden de venta a un cliente industrial.
type SalesOrder struct {
	Number         string
	CustomerName   string
	Date           *time.Time
	TotalPrice     decimal.Decimal
	ShipmentStatus string
	DeliveryStatus string
	PaymentStatus  string
	Items          []OrderItem
}

// ExecutiveKPIs indicadores acumulados del tablero ejecutivo.
type ExecutiveKPIs struct {
	TotalRevenue      decimal.Decimal
	GrossProfit       decimal.Decimal
	TotalPurchaseCost decimal.Decimal
	CurrentStockValue decimal.Decimal
}

// ExecutiveSummary resumen crudo del tablero ejecutivo.
// Los mapas usan fechas ISO como llave y solo traen los días con movimiento.
type ExecutiveSummary struct {
	KPIs            ExecutiveKPIs
	SalesChart      map[string]decimal.Decimal
	PurchaseChart   map[string]decimal.Decimal
	RecentSales     []SalesOrder
	RecentPurchases []PurchaseOrder
}
