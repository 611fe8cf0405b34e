package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

var _ ports.EmployeeGateway = (*Client)(nil)

type employeeWire struct {
	ID            flexString `json:"e_id"`
	Name          string     `json:"e_name"`
	Role          string     `json:"e_role"`
	Position      string     `json:"position"`
	Email         string     `json:"e_email"`
	Telephone     string     `json:"e_tel"`
	CitizenIDCard string     `json:"e_citizen_id_card"`
	Active        *bool      `json:"is_active"`
}

func (w employeeWire) toEntity() *entity.Employee {
	return &entity.Employee{
		ID:            string(w.ID),
		Name:          w.Name,
		Role:          w.Role,
		Position:      w.Position,
		Email:         w.Email,
		Telephone:     w.Telephone,
		CitizenIDCard: w.CitizenIDCard,
		// versiones viejas del backend no envían is_active; se asume activo
		Active: w.Active == nil || *w.Active,
	}
}

type employeePayload struct {
	Name          string `json:"e_name"`
	Role          string `json:"e_role"`
	Position      string `json:"position"`
	Email         string `json:"e_email,omitempty"`
	Telephone     string `json:"e_tel,omitempty"`
	CitizenIDCard string `json:"e_citizen_id_card,omitempty"`
	Username      string `json:"username,omitempty"`
	Password      string `json:"password,omitempty"`
}

func newEmployeePayload(in ports.EmployeeInput) employeePayload {
	return employeePayload{
		Name:          in.Name,
		Role:          in.Role,
		Position:      in.Position,
		Email:         in.Email,
		Telephone:     in.Telephone,
		CitizenIDCard: in.CitizenIDCard,
		Username:      in.Username,
		Password:      in.Password,
	}
}

// ListEmployees GET /employees.
func (c *Client) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	var wire []employeeWire
	if err := c.do(ctx, http.MethodGet, "/employees", nil, nil, &wire); err != nil {
		return nil, fmt.Errorf("listar empleados: %w", err)
	}
	out := make([]entity.Employee, 0, len(wire))
	for _, w := range wire {
		out = append(out, *w.toEntity())
	}
	return out, nil
}

// GetEmployee GET /employees/{id}.
func (c *Client) GetEmployee(ctx context.Context, id string) (*entity.Employee, error) {
	var w employeeWire
	if err := c.do(ctx, http.MethodGet, resourcePath("/employees", id), nil, nil, &w); err != nil {
		return nil, fmt.Errorf("obtener empleado %s: %w", id, err)
	}
	return w.toEntity(), nil
}

// CreateEmployee POST /employees.
func (c *Client) CreateEmployee(ctx context.Context, in ports.EmployeeInput) (*entity.Employee, error) {
	var w employeeWire
	if err := c.do(ctx, http.MethodPost, "/employees", nil, newEmployeePayload(in), &w); err != nil {
		return nil, fmt.Errorf("crear empleado: %w", err)
	}
	return w.toEntity(), nil
}

// UpdateEmployee PUT /employees/{id}. Password vacío no modifica la contraseña.
func (c *Client) UpdateEmployee(ctx context.Context, id string, in ports.EmployeeInput) (*entity.Employee, error) {
	var w employeeWire
	if err := c.do(ctx, http.MethodPut, resourcePath("/employees", id), nil, newEmployeePayload(in), &w); err != nil {
		return nil, fmt.Errorf("actualizar empleado %s: %w", id, err)
	}
	return w.toEntity(), nil
}

// DeleteEmployee DELETE /employees/{id}.
func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, resourcePath("/employees", id), nil, nil, nil); err != nil {
		return fmt.Errorf("eliminar empleado %s: %w", id, err)
	}
	return nil
}
