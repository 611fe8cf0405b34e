package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// Credentials usuario y contraseña tal como los valida el backend.
type Credentials struct {
	Username string
	Password string
}

// FarmerInput campos editables de un agricultor.
type FarmerInput struct {
	Name           string
	NationalIDCard string
	Telephone      string
	Address        string
}

// IndustryInput campos editables de un cliente industrial.
type IndustryInput struct {
	Name      string
	Telephone string
	Address   string
}

// EmployeeInput campos editables de un empleado. Password solo se envía si no está vacío.
type EmployeeInput struct {
	Name          string
	Role          string
	Position      string
	Email         string
	Telephone     string
	CitizenIDCard string
	Username      string
	Password      string
}

// WarehouseInput campos editables de una bodega.
type WarehouseInput struct {
	Name     string
	Location string
}

// OrderFilter filtros de los listados de órdenes; vacío = sin filtro.
type OrderFilter struct {
	Search string
	Status string
}

// AuthGateway puerto de salida hacia el login del backend.
type AuthGateway interface {
	// Login devuelve el empleado autenticado. Credenciales inválidas → domain.ErrUnauthorized.
	Login(ctx context.Context, cred Credentials) (*entity.User, error)
}

// ProductGateway productos y precios.
type ProductGateway interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	UpdateProductPrice(ctx context.Context, id string, price decimal.Decimal) (*entity.Product, error)
}

// FarmerGateway agricultores (sin borrado).
type FarmerGateway interface {
	ListFarmers(ctx context.Context) ([]entity.Farmer, error)
	GetFarmer(ctx context.Context, id string) (*entity.Farmer, error)
	CreateFarmer(ctx context.Context, in FarmerInput) (*entity.Farmer, error)
	UpdateFarmer(ctx context.Context, id string, in FarmerInput) (*entity.Farmer, error)
}

// IndustryGateway CRUD completo de clientes industriales.
type IndustryGateway interface {
	ListIndustries(ctx context.Context) ([]entity.Industry, error)
	GetIndustry(ctx context.Context, id string) (*entity.Industry, error)
	CreateIndustry(ctx context.Context, in IndustryInput) (*entity.Industry, error)
	UpdateIndustry(ctx context.Context, id string, in IndustryInput) (*entity.Industry, error)
	DeleteIndustry(ctx context.Context, id string) error
}

// StockGateway existencias por producto y bodega.
type StockGateway interface {
	ListStock(ctx context.Context) ([]entity.StockRow, error)
}

// ReportGateway tablero y reportes.
type ReportGateway interface {
	GetDashboardSummary(ctx context.Context) (*entity.DashboardSummary, error)
	GetProfitLossReport(ctx context.Context, startDate, endDate string) (*entity.ProfitLossReport, error)
}

// EmployeeGateway gestión de personal (Admin).
type EmployeeGateway interface {
	ListEmployees(ctx context.Context) ([]entity.Employee, error)
	GetEmployee(ctx context.Context, id string) (*entity.Employee, error)
	CreateEmployee(ctx context.Context, in EmployeeInput) (*entity.Employee, error)
	UpdateEmployee(ctx context.Context, id string, in EmployeeInput) (*entity.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

// WarehouseGateway gestión de bodegas.
type WarehouseGateway interface {
	ListWarehouses(ctx context.Context) ([]entity.Warehouse, error)
	CreateWarehouse(ctx context.Context, in WarehouseInput) (*entity.Warehouse, error)
	UpdateWarehouse(ctx context.Context, id string, in WarehouseInput) (*entity.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id string) error
}

// OrderGateway historial de órdenes de compra y de venta (solo lectura).
type OrderGateway interface {
	ListPurchaseOrders(ctx context.Context, f OrderFilter) ([]entity.PurchaseOrder, error)
	GetPurchaseOrder(ctx context.Context, number string) (*entity.PurchaseOrder, error)
	ListSalesOrders(ctx context.Context, f OrderFilter) ([]entity.SalesOrder, error)
	GetSalesOrder(ctx context.Context, number string) (*entity.SalesOrder, error)
	// ListSalesOrdersPendingPayment órdenes entregadas que aún no se cobran.
	ListSalesOrdersPendingPayment(ctx context.Context) ([]entity.SalesOrder, error)
}

// ExecutiveGateway tablero del Ejecutivo.
type ExecutiveGateway interface {
	GetExecutiveSummary(ctx context.Context) (*entity.ExecutiveSummary, error)
}
