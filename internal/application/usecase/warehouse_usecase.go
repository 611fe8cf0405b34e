package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// WarehouseUseCase gestión de bodegas (Bodega y Admin).
type WarehouseUseCase struct {
	gateway ports.WarehouseGateway
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(gateway ports.WarehouseGateway) *WarehouseUseCase {
	return &WarehouseUseCase{gateway: gateway}
}

// List todas las bodegas.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	whs, err := uc.gateway.ListWarehouses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(whs))
	for i := range whs {
		out = append(out, toWarehouseResponse(&whs[i]))
	}
	return out, nil
}

// Create valida y registra una bodega.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	in.Name, in.Location = strings.TrimSpace(in.Name), strings.TrimSpace(in.Location)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	w, err := uc.gateway.CreateWarehouse(ctx, ports.WarehouseInput{Name: in.Name, Location: in.Location})
	if err != nil {
		return nil, err
	}
	resp := toWarehouseResponse(w)
	return &resp, nil
}

// Update valida y reemplaza los datos de una bodega.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	id, err := requireID(id)
	if err != nil {
		return nil, err
	}
	in.Name, in.Location = strings.TrimSpace(in.Name), strings.TrimSpace(in.Location)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	w, err := uc.gateway.UpdateWarehouse(ctx, id, ports.WarehouseInput{Name: in.Name, Location: in.Location})
	if err != nil {
		return nil, err
	}
	resp := toWarehouseResponse(w)
	return &resp, nil
}

// Delete elimina una bodega; con stock asignado el backend responde conflicto.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return uc.gateway.DeleteWarehouse(ctx, id)
}

func toWarehouseResponse(w *entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{ID: w.ID, Name: w.Name, Location: w.Location}
}
