package aggregate

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/easypalm-console/internal/domain"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// Tone estilo visual de una cifra del reporte.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneWarning  Tone = "warning"
)

// ValidateRange verifica que ambas fechas existan, sean YYYY-MM-DD y start <= end.
// Devuelve un *domain.ValidationError; en ese caso no debe llamarse al backend.
func ValidateRange(start, end string) (time.Time, time.Time, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return time.Time{}, time.Time{}, domain.NewValidationError("", "debe seleccionar fecha de inicio y fecha de fin")
	}
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("start_date", "formato esperado YYYY-MM-DD")
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("end_date", "formato esperado YYYY-MM-DD")
	}
	if s.After(e) {
		return time.Time{}, time.Time{}, domain.NewValidationError("", "la fecha de inicio debe ser anterior o igual a la fecha de fin")
	}
	return s, e, nil
}

// ProfitTone cifras >= 0 se muestran en estilo positivo; negativas como advertencia.
func ProfitTone(v decimal.Decimal) Tone {
	if v.IsNegative() {
		return ToneWarning
	}
	return TonePositive
}

// CheckGrossProfit detecta si GrossProfit != TotalRevenue - TotalCOGS.
// No corrige nada: el valor del backend sigue siendo el autoritativo.
func CheckGrossProfit(r entity.ProfitLossReport) error {
	expected := r.TotalRevenue.Sub(r.TotalCOGS)
	if !expected.Equal(r.GrossProfit) {
		return fmt.Errorf("gross_profit %s no coincide con total_revenue - total_cogs = %s",
			r.GrossProfit.String(), expected.String())
	}
	return nil
}

// AmountFormatter formatea montos con separadores según el idioma configurado.
type AmountFormatter struct {
	p *message.Printer
}

// NewAmountFormatter usa el tag BCP 47 indicado; si no se reconoce, usa tailandés.
func NewAmountFormatter(locale string) *AmountFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Thai
	}
	return &AmountFormatter{p: message.NewPrinter(tag)}
}

// Format devuelve el monto con dos decimales y separador de miles.
func (f *AmountFormatter) Format(v decimal.Decimal) string {
	return f.p.Sprintf("%.2f", v.Round(2).InexactFloat64())
}
