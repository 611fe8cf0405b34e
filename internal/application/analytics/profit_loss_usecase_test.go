package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/easypalm-console/internal/application/analytics"
	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/domain"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

type pdfSpy struct{ got *entity.ProfitLossReport }

func (p *pdfSpy) GenerateProfitLossPDF(_ context.Context, r *entity.ProfitLossReport, _ time.Time) ([]byte, error) {
	p.got = r
	return []byte("%PDF-1.3"), nil
}

func TestProfitLossUseCase_SubmitStateYPDF(t *testing.T) {
	r := sampleReport()
	r.GrossProfit = decimal.RequireFromString("-20")
	reg := analytics.NewProfitLossRegistry(&fakeReports{report: r}, time.Second, nil)
	spy := &pdfSpy{}
	uc := analytics.NewProfitLossUseCase(reg, spy, "en")

	_, _, err := uc.ExportPDF(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "sin reporte no hay PDF")

	out, err := uc.Submit(context.Background(), "s1", dto.ProfitLossRequest{StartDate: "2025-01-01", EndDate: "2025-01-31"})
	require.NoError(t, err)
	assert.Equal(t, "warning", out.ProfitTone)
	assert.Equal(t, "-20.00", out.Formatted.GrossProfit)
	assert.Equal(t, "1,000.00", out.Formatted.TotalRevenue)

	st := uc.State("s1")
	assert.Equal(t, "success", st.State)
	assert.False(t, st.Loading)
	require.NotNil(t, st.Report)

	pdf, name, err := uc.ExportPDF(context.Background(), "s1")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "profit-loss_2025-01-01_2025-01-31.pdf", name)
	assert.Equal(t, "2025-01-01", spy.got.StartDate)

	assert.Equal(t, "idle", uc.State("otra-sesion").State, "cada sesión tiene su propio ciclo")
}
