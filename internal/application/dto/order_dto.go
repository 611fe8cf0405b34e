package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderQuery filtros de los historiales de órdenes.
// En compras status acepta unpaid, paid, completed, pending o "not received";
// en ventas es el estado de pago (Paid, Unpaid).
type OrderQuery struct {
	Search string `query:"search" json:"search" validate:"max=100"`
	Status string `query:"status" json:"status" validate:"max=30"`
}

// OrderItemResponse línea de una orden.
type OrderItemResponse struct {
	ProductID    string          `json:"product_id,omitempty"`
	ProductName  string          `json:"product_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

// PurchaseOrderResponse orden de compra con su trazabilidad.
type PurchaseOrderResponse struct {
	Number        string              `json:"number"`
	FarmerID      string              `json:"farmer_id"`
	FarmerName    string              `json:"farmer_name"`
	Date          *time.Time          `json:"date"`
	TotalPrice    decimal.Decimal     `json:"total_price"`
	PaymentStatus string              `json:"payment_status"`
	StockStatus   string              `json:"stock_status"`
	CreatedBy     string              `json:"created_by,omitempty"`
	PaidBy        string              `json:"paid_by,omitempty"`
	ReceivedBy    string              `json:"received_by,omitempty"`
	PaidDate      *time.Time          `json:"paid_date,omitempty"`
	ReceivedDate  *time.Time          `json:"received_date,omitempty"`
	Items         []OrderItemResponse `json:"items"`
}

// SalesOrderResponse orden de venta.
type SalesOrderResponse struct {
	Number         string              `json:"number"`
	CustomerName   string              `json:"customer_name"`
	Date           *time.Time          `json:"date"`
	TotalPrice     decimal.Decimal     `json:"total_price"`
	ShipmentStatus string              `json:"shipment_status"`
	DeliveryStatus string              `json:"delivery_status"`
	PaymentStatus  string              `json:"payment_status"`
	Items          []OrderItemResponse `json:"items"`
}
