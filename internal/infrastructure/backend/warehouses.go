package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

var _ ports.WarehouseGateway = (*Client)(nil)

type warehouseWire struct {
	ID       flexString `json:"warehouse_id"`
	Name     string     `json:"warehouse_name"`
	Location string     `json:"location"`
}

func (w warehouseWire) toEntity() *entity.Warehouse {
	return &entity.Warehouse{ID: string(w.ID), Name: w.Name, Location: w.Location}
}

type warehousePayload struct {
	Name     string `json:"warehouse_name"`
	Location string `json:"location"`
}

// ListWarehouses GET /warehouses.
func (c *Client) ListWarehouses(ctx context.Context) ([]entity.Warehouse, error) {
	var wire []warehouseWire
	if err := c.do(ctx, http.MethodGet, "/warehouses", nil, nil, &wire); err != nil {
		return nil, fmt.Errorf("listar bodegas: %w", err)
	}
	out := make([]entity.Warehouse, 0, len(wire))
	for _, w := range wire {
		out = append(out, *w.toEntity())
	}
	return out, nil
}

// CreateWarehouse POST /warehouses.
func (c *Client) CreateWarehouse(ctx context.Context, in ports.WarehouseInput) (*entity.Warehouse, error) {
	var w warehouseWire
	if err := c.do(ctx, http.MethodPost, "/warehouses", nil, warehousePayload{Name: in.Name, Location: in.Location}, &w); err != nil {
		return nil, fmt.Errorf("crear bodega: %w", err)
	}
	return w.toEntity(), nil
}

// UpdateWarehouse PUT /warehouses/{id}.
func (c *Client) UpdateWarehouse(ctx context.Context, id string, in ports.WarehouseInput) (*entity.Warehouse, error) {
	var w warehouseWire
	if err := c.do(ctx, http.MethodPut, resourcePath("/warehouses", id), nil, warehousePayload{Name: in.Name, Location: in.Location}, &w); err != nil {
		return nil, fmt.Errorf("actualizar bodega %s: %w", id, err)
	}
	return w.toEntity(), nil
}

// DeleteWarehouse DELETE /warehouses/{id}. Con stock asignado el backend responde 409.
func (c *Client) DeleteWarehouse(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, resourcePath("/warehouses", id), nil, nil, nil); err != nil {
		return fmt.Errorf("eliminar bodega %s: %w", id, err)
	}
	return nil
}
