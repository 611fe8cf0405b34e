package dto

import "github.com/shopspring/decimal"

// StockQuery filtro opcional por estado.
type StockQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=in_stock out_of_stock"`
}

// StockRowResponse existencia con su estado derivado.
type StockRowResponse struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Status        string          `json:"status"`
}

// StockSummaryDTO conteo por estado sobre todas las filas (antes de filtrar).
type StockSummaryDTO struct {
	InStock    int `json:"in_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// StockResponse respuesta de GET /api/stock.
type StockResponse struct {
	Items   []StockRowResponse `json:"items"`
	Summary StockSummaryDTO    `json:"summary"`
}
