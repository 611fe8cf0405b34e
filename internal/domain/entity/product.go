package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto de palma con su precio de compra vigente.
// PricePerUnit nunca es negativo; solo un Admin puede modificarlo.
type Product struct {
	ID            string
	Name          string
	PricePerUnit  decimal.Decimal
	EffectiveDate *time.Time
}
