package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// Classify InStock si y solo si quantity > 0. Las cantidades negativas son un
// error del backend y aquí no se corrigen (caen en OutOfStock).
func Classify(quantity decimal.Decimal) entity.StockStatus {
	if quantity.IsPositive() {
		return entity.StockInStock
	}
	return entity.StockOutOfStock
}

// StockSummary conteo de filas por estado.
type StockSummary struct {
	InStock    int
	OutOfStock int
}

// SummarizeStock cuenta cuántas filas hay con y sin existencias.
func SummarizeStock(rows []entity.StockRow) StockSummary {
	var s StockSummary
	for _, r := range rows {
		if Classify(r.Quantity) == entity.StockInStock {
			s.InStock++
		} else {
			s.OutOfStock++
		}
	}
	return s
}

// FilterStock conserva solo las filas con el estado dado, en el mismo orden.
func FilterStock(rows []entity.StockRow, status entity.StockStatus) []entity.StockRow {
	out := make([]entity.StockRow, 0, len(rows))
	for _, r := range rows {
		if Classify(r.Quantity) == status {
			out = append(out, r)
		}
	}
	return out
}
