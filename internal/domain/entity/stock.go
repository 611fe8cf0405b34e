package entity

import "github.com/shopspring/decimal"

// StockStatus clasificación derivada de la cantidad en bodega.
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

// StockRow existencia de un producto en una bodega (solo lectura, la calcula el backend).
type StockRow struct {
	ProductID     string
	ProductName   string
	WarehouseID   string
	WarehouseName string
	Quantity      decimal.Decimal
}
