package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

var _ ports.StockGateway = (*Client)(nil)

type stockWire struct {
	ProductID     flexString      `json:"product_id"`
	PID           flexString      `json:"p_id"`
	ProductName   string          `json:"product_name"`
	WarehouseID   flexString      `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// ListStock GET /stock. Según la versión del backend el id de producto llega como product_id o p_id.
func (c *Client) ListStock(ctx context.Context) ([]entity.StockRow, error) {
	var wire []stockWire
	if err := c.do(ctx, http.MethodGet, "/stock", nil, nil, &wire); err != nil {
		return nil, fmt.Errorf("listar stock: %w", err)
	}
	out := make([]entity.StockRow, 0, len(wire))
	for _, w := range wire {
		pid := w.ProductID
		if pid == "" {
			pid = w.PID
		}
		out = append(out, entity.StockRow{
			ProductID:     string(pid),
			ProductName:   w.ProductName,
			WarehouseID:   string(w.WarehouseID),
			WarehouseName: w.WarehouseName,
			Quantity:      w.Quantity,
		})
	}
	return out, nil
}
