// Package analytics contiene los casos de uso de reportes: el tablero del Admin
// y el ciclo del reporte de pérdidas y ganancias del Ejecutivo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/aggregate"
)

const chartDays = 7 // días del gráfico de compras, terminando hoy

// DashboardUseCase arma el tablero del Admin a partir del resumen crudo del backend.
//
// El backend solo envía los días con compras; aquí se completa la semana con ceros
// para que el gráfico tenga siempre siete barras.
type DashboardUseCase struct {
	gateway ports.ReportGateway
	now     aggregate.Clock
}

// NewDashboardUseCase construye el caso de uso. now nil = time.Now.
func NewDashboardUseCase(gateway ports.ReportGateway, now aggregate.Clock) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{gateway: gateway, now: now}
}

// GetAdminSummary indicadores, gráfico de 7 días y compras recientes.
func (uc *DashboardUseCase) GetAdminSummary(ctx context.Context) (*dto.AdminDashboardDTO, error) {
	summary, err := uc.gateway.GetDashboardSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	// ── Gráfico ────────────────────────────────────────────────────────────────
	series := aggregate.ChartSeries(aggregate.BucketLastNDays(chartDays, uc.now), summary.PurchaseChartData)
	chart := make([]dto.ChartPointDTO, 0, len(series))
	for _, p := range series {
		chart = append(chart, dto.ChartPointDTO{Date: p.Date, Total: p.Total})
	}

	// ── Compras recientes ──────────────────────────────────────────────────────
	recent := make([]dto.RecentPurchaseDTO, 0, len(summary.RecentPurchases))
	for _, p := range summary.RecentPurchases {
		recent = append(recent, dto.RecentPurchaseDTO{
			OrderNumber: p.OrderNumber,
			FarmerName:  p.FarmerName,
			TotalPrice:  p.TotalPrice,
		})
	}

	km := summary.KeyMetrics
	return &dto.AdminDashboardDTO{
		KeyMetrics: dto.KeyMetricsDTO{
			PurchaseToday:   km.PurchaseToday,
			PendingPayments: km.PendingPayments,
			EmployeeCount:   km.EmployeeCount,
			FarmerCount:     km.FarmerCount,
		},
		PurchaseChart:   chart,
		RecentPurchases: recent,
	}, nil
}
