package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// IndustryUseCase clientes industriales (Ventas): CRUD completo.
type IndustryUseCase struct {
	gateway ports.IndustryGateway
}

// NewIndustryUseCase construye el caso de uso.
func NewIndustryUseCase(gateway ports.IndustryGateway) *IndustryUseCase {
	return &IndustryUseCase{gateway: gateway}
}

// List todos los clientes industriales.
func (uc *IndustryUseCase) List(ctx context.Context) ([]dto.IndustryResponse, error) {
	industries, err := uc.gateway.ListIndustries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IndustryResponse, 0, len(industries))
	for i := range industries {
		out = append(out, toIndustryResponse(&industries[i]))
	}
	return out, nil
}

// Get un cliente por id.
func (uc *IndustryUseCase) Get(ctx context.Context, id string) (*dto.IndustryResponse, error) {
	id, err := requireID(id)
	if err != nil {
		return nil, err
	}
	ind, err := uc.gateway.GetIndustry(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toIndustryResponse(ind)
	return &resp, nil
}

// Create valida y registra un cliente.
func (uc *IndustryUseCase) Create(ctx context.Context, in dto.IndustryRequest) (*dto.IndustryResponse, error) {
	in = trimIndustry(in)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	ind, err := uc.gateway.CreateIndustry(ctx, toIndustryInput(in))
	if err != nil {
		return nil, err
	}
	resp := toIndustryResponse(ind)
	return &resp, nil
}

// Update valida y reemplaza los datos de un cliente.
func (uc *IndustryUseCase) Update(ctx context.Context, id string, in dto.IndustryRequest) (*dto.IndustryResponse, error) {
	id, err := requireID(id)
	if err != nil {
		return nil, err
	}
	in = trimIndustry(in)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	ind, err := uc.gateway.UpdateIndustry(ctx, id, toIndustryInput(in))
	if err != nil {
		return nil, err
	}
	resp := toIndustryResponse(ind)
	return &resp, nil
}

// Delete elimina un cliente.
func (uc *IndustryUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return uc.gateway.DeleteIndustry(ctx, id)
}

func trimIndustry(in dto.IndustryRequest) dto.IndustryRequest {
	in.Name = strings.TrimSpace(in.Name)
	in.Telephone = strings.TrimSpace(in.Telephone)
	in.Address = strings.TrimSpace(in.Address)
	return in
}

func toIndustryInput(in dto.IndustryRequest) ports.IndustryInput {
	return ports.IndustryInput{Name: in.Name, Telephone: in.Telephone, Address: in.Address}
}

func toIndustryResponse(i *entity.Industry) dto.IndustryResponse {
	return dto.IndustryResponse{
		ID:        i.ID,
		Name:      i.Name,
		Telephone: i.Telephone,
		Address:   i.Address,
		CreatedAt: i.CreatedAt,
	}
}
