package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// fakeBackend implementa todos los gateways en memoria y cuenta las llamadas.
type fakeBackend struct {
	calls int

	products   []entity.Product
	stock      []entity.StockRow
	farmers    []entity.Farmer
	lastFarmer ports.FarmerInput
	lastEmp    ports.EmployeeInput
	lastPrice  decimal.Decimal
	err        error
}

func (f *fakeBackend) ListProducts(context.Context) ([]entity.Product, error) {
	f.calls++
	return f.products, f.err
}

func (f *fakeBackend) UpdateProductPrice(_ context.Context, id string, price decimal.Decimal) (*entity.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.lastPrice = price
	return &entity.Product{ID: id, Name: "ปาล์ม", PricePerUnit: price}, nil
}

func (f *fakeBackend) ListStock(context.Context) ([]entity.StockRow, error) {
	f.calls++
	return f.stock, f.err
}

func (f *fakeBackend) ListFarmers(context.Context) ([]entity.Farmer, error) {
	f.calls++
	return f.farmers, f.err
}

func (f *fakeBackend) GetFarmer(_ context.Context, id string) (*entity.Farmer, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Farmer{ID: id}, nil
}

func (f *fakeBackend) CreateFarmer(_ context.Context, in ports.FarmerInput) (*entity.Farmer, error) {
	f.calls++
	f.lastFarmer = in
	return &entity.Farmer{ID: "F001", Name: in.Name, NationalIDCard: in.NationalIDCard, Telephone: in.Telephone}, f.err
}

func (f *fakeBackend) UpdateFarmer(_ context.Context, id string, in ports.FarmerInput) (*entity.Farmer, error) {
	f.calls++
	f.lastFarmer = in
	return &entity.Farmer{ID: id, Name: in.Name}, f.err
}

func (f *fakeBackend) ListEmployees(context.Context) ([]entity.Employee, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeBackend) GetEmployee(_ context.Context, id string) (*entity.Employee, error) {
	f.calls++
	return &entity.Employee{ID: id}, f.err
}

func (f *fakeBackend) CreateEmployee(_ context.Context, in ports.EmployeeInput) (*entity.Employee, error) {
	f.calls++
	f.lastEmp = in
	return &entity.Employee{ID: "E010", Name: in.Name, Role: in.Role, Active: true}, f.err
}

func (f *fakeBackend) UpdateEmployee(_ context.Context, id string, in ports.EmployeeInput) (*entity.Employee, error) {
	f.calls++
	f.lastEmp = in
	return &entity.Employee{ID: id, Name: in.Name, Role: in.Role}, f.err
}

func (f *fakeBackend) DeleteEmployee(context.Context, string) error {
	f.calls++
	return f.err
}
