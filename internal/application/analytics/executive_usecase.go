package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/aggregate"
)

const executiveChartDays = 30 // ventas contra compras, terminando hoy

// ExecutiveDashboardUseCase tablero del Ejecutivo: indicadores acumulados,
// ventas contra compras de los últimos 30 días y órdenes recientes.
type ExecutiveDashboardUseCase struct {
	gateway ports.ExecutiveGateway
	now     aggregate.Clock
}

// NewExecutiveDashboardUseCase construye el caso de uso. now nil = time.Now.
func NewExecutiveDashboardUseCase(gateway ports.ExecutiveGateway, now aggregate.Clock) *ExecutiveDashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &ExecutiveDashboardUseCase{gateway: gateway, now: now}
}

// GetSummary arma el tablero; los días sin movimiento quedan en cero.
func (uc *ExecutiveDashboardUseCase) GetSummary(ctx context.Context) (*dto.ExecutiveDashboardDTO, error) {
	summary, err := uc.gateway.GetExecutiveSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard ejecutivo: %w", err)
	}

	// ── Gráfico ────────────────────────────────────────────────────────────────
	days := aggregate.BucketLastNDays(executiveChartDays, uc.now)
	sales := aggregate.ChartSeries(days, summary.SalesChart)
	purchases := aggregate.ChartSeries(days, summary.PurchaseChart)
	chart := make([]dto.ExecutiveChartPointDTO, len(days))
	for i, day := range days {
		chart[i] = dto.ExecutiveChartPointDTO{Date: day, Sales: sales[i].Total, Purchases: purchases[i].Total}
	}

	// ── Órdenes recientes ──────────────────────────────────────────────────────
	recentSales := make([]dto.RecentOrderDTO, 0, len(summary.RecentSales))
	for _, so := range summary.RecentSales {
		recentSales = append(recentSales, recentOrder(so.Number, so.CustomerName, so.Date, so.TotalPrice))
	}
	recentPurchases := make([]dto.RecentOrderDTO, 0, len(summary.RecentPurchases))
	for _, po := range summary.RecentPurchases {
		recentPurchases = append(recentPurchases, recentOrder(po.Number, po.FarmerName, po.Date, po.TotalPrice))
	}

	k := summary.KPIs
	return &dto.ExecutiveDashboardDTO{
		KPIs: dto.ExecutiveKPIsDTO{
			TotalRevenue:      k.TotalRevenue,
			GrossProfit:       k.GrossProfit,
			TotalPurchaseCost: k.TotalPurchaseCost,
			CurrentStockValue: k.CurrentStockValue,
		},
		Chart:           chart,
		RecentSales:     recentSales,
		RecentPurchases: recentPurchases,
	}, nil
}

func recentOrder(number, party string, date *time.Time, total decimal.Decimal) dto.RecentOrderDTO {
	out := dto.RecentOrderDTO{OrderNumber: number, Party: party, TotalPrice: total}
	if date != nil {
		d := date.Format(aggregate.DateLayout)
		out.Date = &d
	}
	return out
}
