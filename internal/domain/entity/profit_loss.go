package entity

import "github.com/shopspring/decimal"

// ProfitLossReport reporte de pérdidas y ganancias de un rango de fechas.
// GrossProfit lo calcula el backend y es la cifra autoritativa.
type ProfitLossReport struct {
	StartDate    string
	EndDate      string
	TotalRevenue decimal.Decimal
	TotalCOGS    decimal.Decimal
	GrossProfit  decimal.Decimal
}
