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

var _ ports.ReportGateway = (*Client)(nil)

// profitLossPath a diferencia del resto de recursos, el backend monta este reporte bajo /api.
const profitLossPath = "/api/reports/profit-loss"

type dashboardWire struct {
	KeyMetrics struct {
		PurchaseToday   decimal.Decimal `json:"purchase_today"`
		PendingPayments int             `json:"pending_payments"`
		EmployeeCount   int             `json:"employee_count"`
		FarmerCount     int             `json:"farmer_count"`
	} `json:"key_metrics"`
	RecentPurchases []struct {
		OrderNumber flexString      `json:"purchase_order_number"`
		FarmerName  string          `json:"farmer_name"`
		TotalPrice  decimal.Decimal `json:"b_total_price"`
	} `json:"recent_purchases"`
	PurchaseChartData map[string]decimal.Decimal `json:"purchase_chart_data"`
}

// GetDashboardSummary GET /admin/dashboard-summary.
func (c *Client) GetDashboardSummary(ctx context.Context) (*entity.DashboardSummary, error) {
	var w dashboardWire
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard-summary", nil, nil, &w); err != nil {
		return nil, fmt.Errorf("resumen del tablero: %w", err)
	}

	out := &entity.DashboardSummary{
		KeyMetrics: entity.KeyMetrics{
			PurchaseToday:   w.KeyMetrics.PurchaseToday,
			PendingPayments: w.KeyMetrics.PendingPayments,
			EmployeeCount:   w.KeyMetrics.EmployeeCount,
			FarmerCount:     w.KeyMetrics.FarmerCount,
		},
		PurchaseChartData: w.PurchaseChartData,
		RecentPurchases:   make([]entity.RecentPurchase, 0, len(w.RecentPurchases)),
	}
	if out.PurchaseChartData == nil {
		out.PurchaseChartData = map[string]decimal.Decimal{}
	}
	for _, p := range w.RecentPurchases {
		out.RecentPurchases = append(out.RecentPurchases, entity.RecentPurchase{
			OrderNumber: string(p.OrderNumber),
			FarmerName:  p.FarmerName,
			TotalPrice:  p.TotalPrice,
		})
	}
	return out, nil
}

type profitLossWire struct {
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCOGS    decimal.Decimal `json:"total_cogs"`
	GrossProfit  decimal.Decimal `json:"gross_profit"`
}

// GetProfitLossReport GET /api/reports/profit-loss?start_date&end_date (YYYY-MM-DD).
func (c *Client) GetProfitLossReport(ctx context.Context, startDate, endDate string) (*entity.ProfitLossReport, error) {
	q := url.Values{}
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)

	var w profitLossWire
	if err := c.do(ctx, http.MethodGet, profitLossPath, q, nil, &w); err != nil {
		return nil, fmt.Errorf("reporte de pérdidas y ganancias: %w", err)
	}
	return &entity.ProfitLossReport{
		StartDate:    w.StartDate,
		EndDate:      w.EndDate,
		TotalRevenue: w.TotalRevenue,
		TotalCOGS:    w.TotalCOGS,
		GrossProfit:  w.GrossProfit,
	}, nil
}
