package dto

import "github.com/shopspring/decimal"

// AdminDashboardDTO respuesta de GET /api/dashboard/admin.
type AdminDashboardDTO struct {
	KeyMetrics      KeyMetricsDTO       `json:"key_metrics"`
	PurchaseChart   []ChartPointDTO     `json:"purchase_chart"` // 7 días, del más antiguo a hoy
	RecentPurchases []RecentPurchaseDTO `json:"recent_purchases"`
}

// KeyMetricsDTO indicadores del día.
type KeyMetricsDTO struct {
	PurchaseToday   decimal.Decimal `json:"purchase_today"`
	PendingPayments int             `json:"pending_payments"`
	EmployeeCount   int             `json:"employee_count"`
	FarmerCount     int             `json:"farmer_count"`
}

// ChartPointDTO barra del gráfico de compras.
type ChartPointDTO struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// RecentPurchaseDTO orden de compra reciente.
type RecentPurchaseDTO struct {
	OrderNumber string          `json:"order_number"`
	FarmerName  string          `json:"farmer_name"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// ExecutiveDashboardDTO respuesta de GET /api/dashboard/executive.
type ExecutiveDashboardDTO struct {
	KPIs            ExecutiveKPIsDTO         `json:"kpis"`
	Chart           []ExecutiveChartPointDTO `json:"chart"` // 30 días, del más antiguo a hoy
	RecentSales     []RecentOrderDTO         `json:"recent_sales"`
	RecentPurchases []RecentOrderDTO         `json:"recent_purchases"`
}

// ExecutiveKPIsDTO indicadores acumulados.
type ExecutiveKPIsDTO struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	GrossProfit       decimal.Decimal `json:"gross_profit"`
	TotalPurchaseCost decimal.Decimal `json:"total_purchase_cost"`
	CurrentStockValue decimal.Decimal `json:"current_stock_value"`
}

// ExecutiveChartPointDTO ventas y compras de un día.
type ExecutiveChartPointDTO struct {
	Date      string          `json:"date"`
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
}

// RecentOrderDTO orden reciente; Party es el cliente o el agricultor.
type RecentOrderDTO struct {
	OrderNumber string          `json:"order_number"`
	Party       string          `json:"party"`
	Date        *string         `json:"date"` // YYYY-MM-DD
	TotalPrice  decimal.Decimal `json:"total_price"`
}
