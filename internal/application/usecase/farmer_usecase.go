package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// FarmerUseCase registro de agricultores (Compras). El backend no expone borrado en la consola.
type FarmerUseCase struct {
	gateway ports.FarmerGateway
}

// NewFarmerUseCase construye el caso de uso.
func NewFarmerUseCase(gateway ports.FarmerGateway) *FarmerUseCase {
	return &FarmerUseCase{gateway: gateway}
}

// List todos los agricultores.
func (uc *FarmerUseCase) List(ctx context.Context) ([]dto.FarmerResponse, error) {
	farmers, err := uc.gateway.ListFarmers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FarmerResponse, 0, len(farmers))
	for i := range farmers {
		out = append(out, toFarmerResponse(&farmers[i]))
	}
	return out, nil
}

// Get un agricultor por id.
func (uc *FarmerUseCase) Get(ctx context.Context, id string) (*dto.FarmerResponse, error) {
	id, err := requireID(id)
	if err != nil {
		return nil, err
	}
	f, err := uc.gateway.GetFarmer(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toFarmerResponse(f)
	return &resp, nil
}

// Create valida y registra un agricultor.
func (uc *FarmerUseCase) Create(ctx context.Context, in dto.FarmerRequest) (*dto.FarmerResponse, error) {
	in = trimFarmer(in)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	f, err := uc.gateway.CreateFarmer(ctx, toFarmerInput(in))
	if err != nil {
		return nil, err
	}
	resp := toFarmerResponse(f)
	return &resp, nil
}

// Update valida y reemplaza los datos de un agricultor.
func (uc *FarmerUseCase) Update(ctx context.Context, id string, in dto.FarmerRequest) (*dto.FarmerResponse, error) {
	id, err := requireID(id)
	if err != nil {
		return nil, err
	}
	in = trimFarmer(in)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	f, err := uc.gateway.UpdateFarmer(ctx, id, toFarmerInput(in))
	if err != nil {
		return nil, err
	}
	resp := toFarmerResponse(f)
	return &resp, nil
}

func trimFarmer(in dto.FarmerRequest) dto.FarmerRequest {
	in.Name = strings.TrimSpace(in.Name)
	in.NationalIDCard = strings.TrimSpace(in.NationalIDCard)
	in.Telephone = strings.TrimSpace(in.Telephone)
	in.Address = strings.TrimSpace(in.Address)
	return in
}

func toFarmerInput(in dto.FarmerRequest) ports.FarmerInput {
	return ports.FarmerInput{
		Name:           in.Name,
		NationalIDCard: in.NationalIDCard,
		Telephone:      in.Telephone,
		Address:        in.Address,
	}
}

func toFarmerResponse(f *entity.Farmer) dto.FarmerResponse {
	return dto.FarmerResponse{
		ID:             f.ID,
		Name:           f.Name,
		NationalIDCard: f.NationalIDCard,
		Telephone:      f.Telephone,
		Address:        f.Address,
	}
}
