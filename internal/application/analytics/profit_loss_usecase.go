package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain"
	"github.com/jhoicas/easypalm-console/internal/domain/aggregate"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// ProfitLossUseCase expone el ciclo de la sesión como DTOs y exporta el PDF.
type ProfitLossUseCase struct {
	registry *ProfitLossRegistry
	pdf      ports.ProfitLossPDFGenerator
	amounts  *aggregate.AmountFormatter
	now      func() time.Time
}

// NewProfitLossUseCase construye el caso de uso.
func NewProfitLossUseCase(registry *ProfitLossRegistry, pdf ports.ProfitLossPDFGenerator, locale string) *ProfitLossUseCase {
	return &ProfitLossUseCase{
		registry: registry,
		pdf:      pdf,
		amounts:  aggregate.NewAmountFormatter(locale),
		now:      time.Now,
	}
}

// Submit consulta el reporte para el rango indicado dentro del ciclo de la sesión.
func (uc *ProfitLossUseCase) Submit(ctx context.Context, sessionID string, in dto.ProfitLossRequest) (*dto.ProfitLossReportDTO, error) {
	report, err := uc.registry.Cycle(sessionID).Submit(ctx, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	return uc.toReportDTO(report), nil
}

// State estado actual del ciclo de la sesión.
func (uc *ProfitLossUseCase) State(sessionID string) dto.ProfitLossStateDTO {
	s := uc.registry.Cycle(sessionID).Snapshot()
	out := dto.ProfitLossStateDTO{
		State:     string(s.State),
		Loading:   s.State == StateLoading,
		Error:     s.Error,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
	}
	if s.Report != nil {
		out.Report = uc.toReportDTO(s.Report)
	}
	return out
}

// ExportPDF genera el PDF del último reporte exitoso de la sesión (un rango inválido
// posterior no lo descarta; un fallo del backend sí).
// Sin reporte → domain.ErrNotFound. Devuelve además el nombre de archivo sugerido.
func (uc *ProfitLossUseCase) ExportPDF(ctx context.Context, sessionID string) ([]byte, string, error) {
	s := uc.registry.Cycle(sessionID).Snapshot()
	if s.Report == nil {
		return nil, "", fmt.Errorf("%w: no hay un reporte generado", domain.ErrNotFound)
	}
	out, err := uc.pdf.GenerateProfitLossPDF(ctx, s.Report, uc.now())
	if err != nil {
		return nil, "", fmt.Errorf("profit-loss: exportar PDF: %w", err)
	}
	name := fmt.Sprintf("profit-loss_%s_%s.pdf", s.Report.StartDate, s.Report.EndDate)
	return out, name, nil
}

func (uc *ProfitLossUseCase) toReportDTO(r *entity.ProfitLossReport) *dto.ProfitLossReportDTO {
	return &dto.ProfitLossReportDTO{
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		TotalRevenue: r.TotalRevenue,
		TotalCOGS:    r.TotalCOGS,
		GrossProfit:  r.GrossProfit,
		Formatted: dto.FormattedAmounts{
			TotalRevenue: uc.amounts.Format(r.TotalRevenue),
			TotalCOGS:    uc.amounts.Format(r.TotalCOGS),
			GrossProfit:  uc.amounts.Format(r.GrossProfit),
		},
		ProfitTone: string(aggregate.ProfitTone(r.GrossProfit)),
	}
}
