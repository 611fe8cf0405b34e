package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

var _ ports.FarmerGateway = (*Client)(nil)

type farmerWire struct {
	ID             flexString `json:"f_id"`
	Name           string     `json:"f_name"`
	NationalIDCard string     `json:"f_citizen_id_card"`
	Telephone      string     `json:"f_tel"`
	Address        string     `json:"f_address"`
}

func (w farmerWire) toEntity() *entity.Farmer {
	return &entity.Farmer{
		ID:             string(w.ID),
		Name:           w.Name,
		NationalIDCard: w.NationalIDCard,
		Telephone:      w.Telephone,
		Address:        w.Address,
	}
}

// farmerPayload cuerpo de POST/PUT; el backend asigna f_id.
type farmerPayload struct {
	Name           string `json:"f_name"`
	NationalIDCard string `json:"f_citizen_id_card"`
	Telephone      string `json:"f_tel"`
	Address        string `json:"f_address"`
}

func newFarmerPayload(in ports.FarmerInput) farmerPayload {
	return farmerPayload{Name: in.Name, NationalIDCard: in.NationalIDCard, Telephone: in.Telephone, Address: in.Address}
}

// ListFarmers GET /farmers.
func (c *Client) ListFarmers(ctx context.Context) ([]entity.Farmer, error) {
	var wire []farmerWire
	if err := c.do(ctx, http.MethodGet, "/farmers", nil, nil, &wire); err != nil {
		return nil, fmt.Errorf("listar agricultores: %w", err)
	}
	out := make([]entity.Farmer, 0, len(wire))
	for _, w := range wire {
		out = append(out, *w.toEntity())
	}
	return out, nil
}

// GetFarmer GET /farmers/{id}.
func (c *Client) GetFarmer(ctx context.Context, id string) (*entity.Farmer, error) {
	var w farmerWire
	if err := c.do(ctx, http.MethodGet, resourcePath("/farmers", id), nil, nil, &w); err != nil {
		return nil, fmt.Errorf("obtener agricultor %s: %w", id, err)
	}
	return w.toEntity(), nil
}

// CreateFarmer POST /farmers.
func (c *Client) CreateFarmer(ctx context.Context, in ports.FarmerInput) (*entity.Farmer, error) {
	var w farmerWire
	if err := c.do(ctx, http.MethodPost, "/farmers", nil, newFarmerPayload(in), &w); err != nil {
		return nil, fmt.Errorf("crear agricultor: %w", err)
	}
	return w.toEntity(), nil
}

// UpdateFarmer PUT /farmers/{id}.
func (c *Client) UpdateFarmer(ctx context.Context, id string, in ports.FarmerInput) (*entity.Farmer, error) {
	var w farmerWire
	if err := c.do(ctx, http.MethodPut, resourcePath("/farmers", id), nil, newFarmerPayload(in), &w); err != nil {
		return nil, fmt.Errorf("actualizar agricultor %s: %w", id, err)
	}
	return w.toEntity(), nil
}
