// Package aggregate reúne las transformaciones puras que convierten filas crudas
// del backend en datos listos para reportes: series del gráfico de compras,
// clasificación de stock y consumo del reporte de pérdidas y ganancias.
package aggregate

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato ISO de día que usa el backend para las llaves del gráfico.
const DateLayout = "2006-01-02"

// Clock fuente inyectable de "ahora" para mantener los cálculos deterministas.
type Clock func() time.Time

// ChartPoint barra del gráfico: un día y su total.
type ChartPoint struct {
	Date  string
	Total decimal.Decimal
}

// BucketLastNDays devuelve los últimos n días calendario terminando hoy (incluido),
// del más antiguo al más reciente. n <= 0 devuelve una lista vacía.
func BucketLastNDays(n int, now Clock) []string {
	if n <= 0 {
		return []string{}
	}
	t := now()
	y, m, d := t.Date()
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, time.Date(y, m, d-i, 0, 0, 0, 0, t.Location()).Format(DateLayout))
	}
	return out
}

// ChartSeries asigna a cada fecha su total; las fechas ausentes en data valen cero
// y nunca se omiten. Las llaves de data fuera del rango se ignoran.
func ChartSeries(dates []string, data map[string]decimal.Decimal) []ChartPoint {
	out := make([]ChartPoint, len(dates))
	for i, date := range dates {
		total, ok := data[date]
		if !ok {
			total = decimal.Zero
		}
		out[i] = ChartPoint{Date: date, Total: total}
	}
	return out
}
