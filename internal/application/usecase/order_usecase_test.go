package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/application/usecase"
	"github.com/jhoicas/easypalm-console/internal/domain"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// fakeOrders historial de órdenes en memoria.
type fakeOrders struct {
	calls      int
	lastFilter ports.OrderFilter
	lastNumber string
	purchases  []entity.PurchaseOrder
	sales      []entity.SalesOrder
	err        error
}

func (f *fakeOrders) ListPurchaseOrders(_ context.Context, flt ports.OrderFilter) ([]entity.PurchaseOrder, error) {
	f.calls++
	f.lastFilter = flt
	return f.purchases, f.err
}

func (f *fakeOrders) GetPurchaseOrder(_ context.Context, number string) (*entity.PurchaseOrder, error) {
	f.calls++
	f.lastNumber = number
	if f.err != nil {
		return nil, f.err
	}
	return &entity.PurchaseOrder{Number: number}, nil
}

func (f *fakeOrders) ListSalesOrders(_ context.Context, flt ports.OrderFilter) ([]entity.SalesOrder, error) {
	f.calls++
	f.lastFilter = flt
	return f.sales, f.err
}

func (f *fakeOrders) GetSalesOrder(_ context.Context, number string) (*entity.SalesOrder, error) {
	f.calls++
	f.lastNumber = number
	if f.err != nil {
		return nil, f.err
	}
	return &entity.SalesOrder{Number: number}, nil
}

func (f *fakeOrders) ListSalesOrdersPendingPayment(context.Context) ([]entity.SalesOrder, error) {
	f.calls++
	return f.sales, f.err
}

// ─── Compras ──────────────────────────────────────────────────────────────────

func TestListPurchaseOrders_RecortaFiltros(t *testing.T) {
	date := time.Date(2025, 1, 9, 8, 0, 0, 0, time.UTC)
	fo := &fakeOrders{purchases: []entity.PurchaseOrder{{
		Number: "PO001", FarmerName: "สมศรี", Date: &date, TotalPrice: decimal.NewFromInt(5400),
		Items: []entity.OrderItem{{ProductName: "ปาล์มทะลาย", Quantity: decimal.NewFromInt(1000), PricePerUnit: decimal.RequireFromString("5.4")}},
	}}}

	out, err := usecase.NewOrderUseCase(fo).ListPurchaseOrders(context.Background(), dto.OrderQuery{Search: "  สม ", Status: " unpaid "})
	require.NoError(t, err)
	assert.Equal(t, ports.OrderFilter{Search: "สม", Status: "unpaid"}, fo.lastFilter)
	require.Len(t, out, 1)
	assert.Equal(t, "PO001", out[0].Number)
	assert.Equal(t, &date, out[0].Date)
	require.Len(t, out[0].Items, 1)
	assert.Equal(t, "5.4", out[0].Items[0].PricePerUnit.String())
}

func TestListPurchaseOrders_BusquedaDemasiadoLarga(t *testing.T) {
	fo := &fakeOrders{}
	_, err := usecase.NewOrderUseCase(fo).ListPurchaseOrders(context.Background(), dto.OrderQuery{Search: strings.Repeat("x", 101)})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "search", ve.Field)
	assert.Zero(t, fo.calls)
}

func TestGetPurchaseOrder_SinNumero(t *testing.T) {
	fo := &fakeOrders{}
	uc := usecase.NewOrderUseCase(fo)

	_, err := uc.GetPurchaseOrder(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, fo.calls)

	out, err := uc.GetPurchaseOrder(context.Background(), " PO001 ")
	require.NoError(t, err)
	assert.Equal(t, "PO001", fo.lastNumber)
	assert.NotNil(t, out.Items, "items nunca es null")
}

// ─── Ventas ───────────────────────────────────────────────────────────────────

func TestPendingPaymentSalesOrders_ListaVaciaNoEsNil(t *testing.T) {
	out, err := usecase.NewOrderUseCase(&fakeOrders{}).PendingPaymentSalesOrders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestGetSalesOrder_PropagaNoEncontrado(t *testing.T) {
	fo := &fakeOrders{err: &domain.ServerError{Status: 404, Message: "not found"}}
	_, err := usecase.NewOrderUseCase(fo).GetSalesOrder(context.Background(), "SO999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListSalesOrders_FiltraPorEstadoDePago(t *testing.T) {
	fo := &fakeOrders{sales: []entity.SalesOrder{{Number: "SO001", PaymentStatus: "Paid"}}}
	out, err := usecase.NewOrderUseCase(fo).ListSalesOrders(context.Background(), dto.OrderQuery{Status: "Paid"})
	require.NoError(t, err)
	assert.Equal(t, "Paid", fo.lastFilter.Status)
	require.Len(t, out, 1)
	assert.Equal(t, "Paid", out[0].PaymentStatus)
}
