package usecase

import (
	"context"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/aggregate"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// StockUseCase vista de existencias con estado derivado (Compras, Bodega y Ventas).
type StockUseCase struct {
	gateway ports.StockGateway
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(gateway ports.StockGateway) *StockUseCase {
	return &StockUseCase{gateway: gateway}
}

// List clasifica cada fila y opcionalmente filtra por estado.
// El resumen siempre cuenta todas las filas, no solo las filtradas.
func (uc *StockUseCase) List(ctx context.Context, q dto.StockQuery) (*dto.StockResponse, error) {
	if err := dto.Validate(q); err != nil {
		return nil, err
	}
	rows, err := uc.gateway.ListStock(ctx)
	if err != nil {
		return nil, err
	}

	summary := aggregate.SummarizeStock(rows)
	if q.Status != "" {
		rows = aggregate.FilterStock(rows, entity.StockStatus(q.Status))
	}

	items := make([]dto.StockRowResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StockRowResponse{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			WarehouseID:   r.WarehouseID,
			WarehouseName: r.WarehouseName,
			Quantity:      r.Quantity,
			Status:        string(aggregate.Classify(r.Quantity)),
		})
	}
	return &dto.StockResponse{
		Items:   items,
		Summary: dto.StockSummaryDTO{InStock: summary.InStock, OutOfStock: summary.OutOfStock},
	}, nil
}
