package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

var _ ports.IndustryGateway = (*Client)(nil)

// industryWire el backend usa la F mayúscula en los campos de food-industries.
type industryWire struct {
	ID         flexString `json:"F_id"`
	Name       string     `json:"F_name"`
	Telephone  string     `json:"F_tel"`
	Address    string     `json:"F_address"`
	CreateDate flexTime   `json:"F_createDate"`
}

func (w industryWire) toEntity() *entity.Industry {
	return &entity.Industry{
		ID:        string(w.ID),
		Name:      w.Name,
		Telephone: w.Telephone,
		Address:   w.Address,
		CreatedAt: w.CreateDate.Time(),
	}
}

type industryPayload struct {
	Name      string `json:"F_name"`
	Telephone string `json:"F_tel"`
	Address   string `json:"F_address"`
}

func newIndustryPayload(in ports.IndustryInput) industryPayload {
	return industryPayload{Name: in.Name, Telephone: in.Telephone, Address: in.Address}
}

// ListIndustries GET /food-industries.
func (c *Client) ListIndustries(ctx context.Context) ([]entity.Industry, error) {
	var wire []industryWire
	if err := c.do(ctx, http.MethodGet, "/food-industries", nil, nil, &wire); err != nil {
		return nil, fmt.Errorf("listar industrias: %w", err)
	}
	out := make([]entity.Industry, 0, len(wire))
	for _, w := range wire {
		out = append(out, *w.toEntity())
	}
	return out, nil
}

// GetIndustry GET /food-industries/{id}.
func (c *Client) GetIndustry(ctx context.Context, id string) (*entity.Industry, error) {
	var w industryWire
	if err := c.do(ctx, http.MethodGet, resourcePath("/food-industries", id), nil, nil, &w); err != nil {
		return nil, fmt.Errorf("obtener industria %s: %w", id, err)
	}
	return w.toEntity(), nil
}

// CreateIndustry POST /food-industries.
func (c *Client) CreateIndustry(ctx context.Context, in ports.IndustryInput) (*entity.Industry, error) {
	var w industryWire
	if err := c.do(ctx, http.MethodPost, "/food-industries", nil, newIndustryPayload(in), &w); err != nil {
		return nil, fmt.Errorf("crear industria: %w", err)
	}
	return w.toEntity(), nil
}

// UpdateIndustry PUT /food-industries/{id}.
func (c *Client) UpdateIndustry(ctx context.Context, id string, in ports.IndustryInput) (*entity.Industry, error) {
	var w industryWire
	if err := c.do(ctx, http.MethodPut, resourcePath("/food-industries", id), nil, newIndustryPayload(in), &w); err != nil {
		return nil, fmt.Errorf("actualizar industria %s: %w", id, err)
	}
	return w.toEntity(), nil
}

// DeleteIndustry DELETE /food-industries/{id}.
func (c *Client) DeleteIndustry(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, resourcePath("/food-industries", id), nil, nil, nil); err != nil {
		return fmt.Errorf("eliminar industria %s: %w", id, err)
	}
	return nil
}
