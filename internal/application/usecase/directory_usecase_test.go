package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/application/usecase"
	"github.com/jhoicas/easypalm-console/internal/domain"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// fakeDirectory clientes industriales y bodegas en memoria.
type fakeDirectory struct {
	calls         int
	lastIndustry  ports.IndustryInput
	lastWarehouse ports.WarehouseInput
	deleted       string
	err           error
}

func (f *fakeDirectory) ListIndustries(context.Context) ([]entity.Industry, error) {
	f.calls++
	return []entity.Industry{{ID: "1", Name: "โรงงานน้ำมัน"}}, f.err
}

func (f *fakeDirectory) GetIndustry(_ context.Context, id string) (*entity.Industry, error) {
	f.calls++
	return &entity.Industry{ID: id}, f.err
}

func (f *fakeDirectory) CreateIndustry(_ context.Context, in ports.IndustryInput) (*entity.Industry, error) {
	f.calls++
	f.lastIndustry = in
	return &entity.Industry{ID: "9", Name: in.Name, Telephone: in.Telephone, Address: in.Address}, f.err
}

func (f *fakeDirectory) UpdateIndustry(_ context.Context, id string, in ports.IndustryInput) (*entity.Industry, error) {
	f.calls++
	f.lastIndustry = in
	return &entity.Industry{ID: id, Name: in.Name}, f.err
}

func (f *fakeDirectory) DeleteIndustry(_ context.Context, id string) error {
	f.calls++
	f.deleted = id
	return f.err
}

func (f *fakeDirectory) ListWarehouses(context.Context) ([]entity.Warehouse, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeDirectory) CreateWarehouse(_ context.Context, in ports.WarehouseInput) (*entity.Warehouse, error) {
	f.calls++
	f.lastWarehouse = in
	return &entity.Warehouse{ID: "3", Name: in.Name, Location: in.Location}, f.err
}

func (f *fakeDirectory) UpdateWarehouse(_ context.Context, id string, in ports.WarehouseInput) (*entity.Warehouse, error) {
	f.calls++
	f.lastWarehouse = in
	return &entity.Warehouse{ID: id, Name: in.Name, Location: in.Location}, f.err
}

func (f *fakeDirectory) DeleteWarehouse(_ context.Context, id string) error {
	f.calls++
	f.deleted = id
	return f.err
}

// ─── Clientes industriales ────────────────────────────────────────────────────

func TestIndustry_CreateRecortaEspacios(t *testing.T) {
	fd := &fakeDirectory{}
	out, err := usecase.NewIndustryUseCase(fd).Create(context.Background(), dto.IndustryRequest{
		Name: "  โรงงานน้ำมัน  ", Telephone: " 021234567 ", Address: " ชลบุรี ",
	})
	require.NoError(t, err)
	assert.Equal(t, ports.IndustryInput{Name: "โรงงานน้ำมัน", Telephone: "021234567", Address: "ชลบุรี"}, fd.lastIndustry)
	assert.Equal(t, "9", out.ID)
}

func TestIndustry_SinNombre_NoLlamaAlBackend(t *testing.T) {
	fd := &fakeDirectory{}
	_, err := usecase.NewIndustryUseCase(fd).Create(context.Background(), dto.IndustryRequest{Name: "   ", Telephone: "021234567"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, fd.calls)
}

func TestIndustry_DeleteSinID(t *testing.T) {
	fd := &fakeDirectory{}
	uc := usecase.NewIndustryUseCase(fd)

	assert.ErrorIs(t, uc.Delete(context.Background(), " "), domain.ErrValidation)
	assert.Zero(t, fd.calls)

	require.NoError(t, uc.Delete(context.Background(), " 4 "))
	assert.Equal(t, "4", fd.deleted)
}

// ─── Bodegas ──────────────────────────────────────────────────────────────────

func TestWarehouse_ListVacioNoEsNil(t *testing.T) {
	out, err := usecase.NewWarehouseUseCase(&fakeDirectory{}).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestWarehouse_UpdateValida(t *testing.T) {
	fd := &fakeDirectory{}
	uc := usecase.NewWarehouseUseCase(fd)

	_, err := uc.Update(context.Background(), "3", dto.WarehouseRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, fd.calls)

	out, err := uc.Update(context.Background(), "3", dto.WarehouseRequest{Name: " คลัง B ", Location: "กระบี่"})
	require.NoError(t, err)
	assert.Equal(t, "คลัง B", out.Name)
	assert.Equal(t, "กระบี่", fd.lastWarehouse.Location)
}

func TestWarehouse_DeletePropagaConflicto(t *testing.T) {
	fd := &fakeDirectory{err: &domain.ServerError{Status: 409, Message: "Warehouse has stock"}}
	err := usecase.NewWarehouseUseCase(fd).Delete(context.Background(), "3")
	assert.ErrorIs(t, err, domain.ErrConflict)
}
