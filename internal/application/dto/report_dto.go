package dto

import "github.com/shopspring/decimal"

// ProfitLossRequest rango de fechas del reporte (YYYY-MM-DD, ambos inclusive).
// El rango se valida en el ciclo del reporte, no aquí, para que un rango inválido
// quede registrado como error del ciclo.
type ProfitLossRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ProfitLossReportDTO reporte tal como lo calculó el backend, más el formato para mostrar.
type ProfitLossReportDTO struct {
	StartDate    string           `json:"start_date"`
	EndDate      string           `json:"end_date"`
	TotalRevenue decimal.Decimal  `json:"total_revenue"`
	TotalCOGS    decimal.Decimal  `json:"total_cogs"`
	GrossProfit  decimal.Decimal  `json:"gross_profit"`
	Formatted    FormattedAmounts `json:"formatted"`
	ProfitTone   string           `json:"profit_tone"` // positive | warning
}

// FormattedAmounts montos con separador de miles y dos decimales.
type FormattedAmounts struct {
	TotalRevenue string `json:"total_revenue"`
	TotalCOGS    string `json:"total_cogs"`
	GrossProfit  string `json:"gross_profit"`
}

// ProfitLossStateDTO estado observable del ciclo del reporte.
type ProfitLossStateDTO struct {
	State     string               `json:"state"` // idle | validating | loading | success | failed
	Loading   bool                 `json:"loading"`
	Error     string               `json:"error,omitempty"`
	StartDate string               `json:"start_date,omitempty"`
	EndDate   string               `json:"end_date,omitempty"`
	Report    *ProfitLossReportDTO `json:"report,omitempty"`
}
