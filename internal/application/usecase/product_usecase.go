package usecase

import (
	"context"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain"
	"github.com/jhoicas/easypalm-console/internal/domain/access"
	"github.com/jhoicas/easypalm-console/internal/domain/aggregate"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// ProductUseCase lectura de productos y cambio de precio (solo Admin).
type ProductUseCase struct {
	gateway ports.ProductGateway
	amounts *aggregate.AmountFormatter
}

// NewProductUseCase construye el caso de uso. locale define el formato de montos del tablero público.
func NewProductUseCase(gateway ports.ProductGateway, locale string) *ProductUseCase {
	return &ProductUseCase{gateway: gateway, amounts: aggregate.NewAmountFormatter(locale)}
}

// List devuelve todos los productos con su precio vigente.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.gateway.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out, nil
}

// PublicPrices tablero de precios de la página de inicio, con montos ya formateados.
func (uc *ProductUseCase) PublicPrices(ctx context.Context) ([]dto.PublicPriceResponse, error) {
	products, err := uc.gateway.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PublicPriceResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.PublicPriceResponse{
			Name:           p.Name,
			PricePerUnit:   p.PricePerUnit,
			PriceFormatted: uc.amounts.Format(p.PricePerUnit),
			EffectiveDate:  formatDate(p.EffectiveDate),
		})
	}
	return out, nil
}

// UpdatePrice cambia price_per_unit. La capacidad se verifica de nuevo aquí, justo
// antes de llamar al backend, aunque la ruta ya esté protegida por rol.
func (uc *ProductUseCase) UpdatePrice(ctx context.Context, user *entity.User, id string, in dto.UpdatePriceRequest) (*dto.ProductResponse, error) {
	if !access.CanEditPrice(user) {
		return nil, domain.ErrForbidden
	}
	id, err := requireID(id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.PricePerUnit.IsNegative() {
		return nil, domain.NewValidationError("price_per_unit", "no puede ser negativo")
	}

	p, err := uc.gateway.UpdateProductPrice(ctx, id, *in.PricePerUnit)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		PricePerUnit:  p.PricePerUnit,
		EffectiveDate: formatDate(p.EffectiveDate),
	}
}
