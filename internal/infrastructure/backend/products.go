package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

var _ ports.ProductGateway = (*Client)(nil)

type productWire struct {
	ID            flexString      `json:"p_id"`
	Name          string          `json:"p_name"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit"`
	EffectiveDate flexTime        `json:"effective_date"`
}

func (w productWire) toEntity() entity.Product {
	return entity.Product{
		ID:            string(w.ID),
		Name:          w.Name,
		PricePerUnit:  w.PricePerUnit,
		EffectiveDate: w.EffectiveDate.Time(),
	}
}

// priceUpdate la columna del backend es Float: el precio viaja como número JSON, no como string.
type priceUpdate struct {
	PricePerUnit json.Number `json:"price_per_unit"`
}

// ListProducts GET /products.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var wire []productWire
	if err := c.do(ctx, http.MethodGet, "/products", nil, nil, &wire); err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	out := make([]entity.Product, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// UpdateProductPrice PUT /products/{id} con solo price_per_unit.
func (c *Client) UpdateProductPrice(ctx context.Context, id string, price decimal.Decimal) (*entity.Product, error) {
	var w productWire
	if err := c.do(ctx, http.MethodPut, resourcePath("/products", id), nil, priceUpdate{PricePerUnit: json.Number(price.String())}, &w); err != nil {
		return nil, fmt.Errorf("actualizar precio %s: %w", id, err)
	}
	p := w.toEntity()
	return &p, nil
}
