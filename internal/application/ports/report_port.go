package ports

import (
	"context"
	"time"

	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// ProfitLossPDFGenerator puerto de salida para exportar el reporte de pérdidas y ganancias.
type ProfitLossPDFGenerator interface {
	GenerateProfitLossPDF(ctx context.Context, report *entity.ProfitLossReport, generatedAt time.Time) ([]byte, error)
}
