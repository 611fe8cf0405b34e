package dto

import "github.com/shopspring/decimal"

// ProductResponse producto con su precio vigente.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit"`
	EffectiveDate *string         `json:"effective_date"` // YYYY-MM-DD
}

// UpdatePriceRequest único campo editable de un producto.
type UpdatePriceRequest struct {
	PricePerUnit *decimal.Decimal `json:"price_per_unit" validate:"required"`
}

// PublicPriceResponse fila del tablero público de precios de la página de inicio.
type PublicPriceResponse struct {
	Name           string          `json:"name"`
	PricePerUnit   decimal.Decimal `json:"price_per_unit"`
	PriceFormatted string          `json:"price_formatted"`
	EffectiveDate  *string         `json:"effective_date"`
}
