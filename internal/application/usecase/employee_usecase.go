package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// EmployeeUseCase gestión de personal (Admin).
type EmployeeUseCase struct {
	gateway ports.EmployeeGateway
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(gateway ports.EmployeeGateway) *EmployeeUseCase {
	return &EmployeeUseCase{gateway: gateway}
}

// List todos los empleados.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	emps, err := uc.gateway.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		out = append(out, toEmployeeResponse(&emps[i]))
	}
	return out, nil
}

// Get un empleado por id.
func (uc *EmployeeUseCase) Get(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	id, err := requireID(id)
	if err != nil {
		return nil, err
	}
	e, err := uc.gateway.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// Create valida y da de alta a un empleado con un rol que la consola reconoce.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	role, err := backendRole(in.Role)
	if err != nil {
		return nil, err
	}
	e, err := uc.gateway.CreateEmployee(ctx, ports.EmployeeInput{
		Name:          in.Name,
		Role:          role,
		Position:      strings.TrimSpace(in.Position),
		Email:         strings.TrimSpace(in.Email),
		Telephone:     strings.TrimSpace(in.Telephone),
		CitizenIDCard: in.CitizenIDCard,
		Username:      in.Username,
		Password:      in.Password,
	})
	if err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// Update valida y reemplaza los datos; password vacío no se envía.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	id, err := requireID(id)
	if err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	role, err := backendRole(in.Role)
	if err != nil {
		return nil, err
	}
	e, err := uc.gateway.UpdateEmployee(ctx, id, ports.EmployeeInput{
		Name:      in.Name,
		Role:      role,
		Position:  strings.TrimSpace(in.Position),
		Email:     strings.TrimSpace(in.Email),
		Telephone: strings.TrimSpace(in.Telephone),
		Password:  in.Password,
	})
	if err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// Delete elimina un empleado.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return uc.gateway.DeleteEmployee(ctx, id)
}

// backendRole el formulario de personal del backend guarda el rol en minúsculas.
func backendRole(s string) (string, error) {
	role, err := entity.ParseRole(s)
	if err != nil {
		return "", domain.NewValidationError("role", err.Error())
	}
	return strings.ToLower(string(role)), nil
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Role:      e.Role,
		Position:  e.Position,
		Email:     e.Email,
		Telephone: e.Telephone,
		Active:    e.Active,
	}
}
