package entity

import "github.com/shopspring/decimal"

// KeyMetrics indicadores del tablero de administración.
type KeyMetrics struct {
	PurchaseToday   decimal.Decimal
	PendingPayments int
	EmployeeCount   int
	FarmerCount     int
}

// RecentPurchase orden de compra reciente mostrada en el tablero.
type RecentPurchase struct {
	OrderNumber string
	FarmerName  string
	TotalPrice  decimal.Decimal
}

// DashboardSummary resumen crudo del tablero tal como lo entrega el backend.
// PurchaseChartData usa fechas ISO (YYYY-MM-DD) como llave; los días sin compras no vienen.
type DashboardSummary struct {
	KeyMetrics        KeyMetrics
	PurchaseChartData map[string]decimal.Decimal
	RecentPurchases   []RecentPurchase
}
