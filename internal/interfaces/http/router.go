package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/easypalm-console/internal/application/analytics"
	"github.com/jhoicas/easypalm-console/internal/application/auth"
	"github.com/jhoicas/easypalm-console/internal/application/usecase"
	"github.com/jhoicas/easypalm-console/internal/domain/access"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
	"github.com/jhoicas/easypalm-console/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	FarmerUC     *usecase.FarmerUseCase
	IndustryUC   *usecase.IndustryUseCase
	StockUC      *usecase.StockUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	OrderUC      *usecase.OrderUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	ExecutiveUC  *appanalytics.ExecutiveDashboardUseCase
	ProfitLossUC *appanalytics.ProfitLossUseCase
	JWTSecret    string
	LoginRPS     float64
	LoginBurst   int
	Log          *logger.Logger
}

// Router registra las rutas de la API.
// Las rutas públicas se registran antes del grupo protegido: el middleware de
// auth del grupo alcanza a todo lo que se registre después bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTSecret)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", RateLimiter(deps.LoginRPS, deps.LoginBurst, deps.Log), authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Tablero de precios de la página de inicio (público)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/public/prices", productHandler.PublicPrices)

	// Rutas protegidas (requieren Bearer Token con sesión vigente)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	protected.Get("/session", authHandler.Session)
	protected.Get("/menu", authHandler.Menu)

	// Products: cualquier rol lee; solo quien puede editar precios escribe
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Put("/:id/price", RequireCapability(access.CapabilityEditPrice), productHandler.UpdatePrice)

	// Farmers (compras)
	farmers := protected.Group("/farmers", RequireRole(entity.RolePurchasing))
	farmerHandler := NewFarmerHandler(deps.FarmerUC)
	farmers.Get("/", farmerHandler.List)
	farmers.Post("/", farmerHandler.Create)
	farmers.Get("/:id", farmerHandler.GetByID)
	farmers.Put("/:id", farmerHandler.Update)

	// Food industries (ventas)
	industries := protected.Group("/industries", RequireRole(entity.RoleSales))
	industryHandler := NewIndustryHandler(deps.IndustryUC)
	industries.Get("/", industryHandler.List)
	industries.Post("/", industryHandler.Create)
	industries.Get("/:id", industryHandler.GetByID)
	industries.Put("/:id", industryHandler.Update)
	industries.Delete("/:id", industryHandler.Delete)

	// Stock (compras, bodega y ventas)
	stockHandler := NewStockHandler(deps.StockUC)
	protected.Get("/stock",
		RequireRole(entity.RolePurchasing, entity.RoleWarehouse, entity.RoleSales),
		stockHandler.List,
	)

	// Dashboards del administrador y del ejecutivo
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ExecutiveUC)
	protected.Get("/dashboard/admin", RequireRole(entity.RoleAdmin), dashboardHandler.GetAdminSummary)
	protected.Get("/dashboard/executive", RequireRole(entity.RoleExecutive), dashboardHandler.GetExecutiveSummary)

	// Historial de compras (compras y contabilidad)
	orderHandler := NewOrderHandler(deps.OrderUC)
	purchaseOrders := protected.Group("/purchase-orders", RequireRole(entity.RolePurchasing, entity.RoleAccountant))
	purchaseOrders.Get("/", orderHandler.ListPurchaseOrders)
	purchaseOrders.Get("/:number", orderHandler.GetPurchaseOrder)

	// Historial de ventas (ventas y contabilidad); cobros pendientes solo contabilidad.
	// pending-payment va antes de /:number.
	salesOrders := protected.Group("/sales-orders", RequireRole(entity.RoleSales, entity.RoleAccountant))
	salesOrders.Get("/pending-payment", RequireRole(entity.RoleAccountant), orderHandler.PendingPayment)
	salesOrders.Get("/", orderHandler.ListSalesOrders)
	salesOrders.Get("/:number", orderHandler.GetSalesOrder)

	// Reporte de pérdidas y ganancias (ejecutivo)
	reports := protected.Group("/reports/profit-loss", RequireRole(entity.RoleExecutive))
	reportHandler := NewReportHandler(deps.ProfitLossUC)
	reports.Post("/", reportHandler.SubmitProfitLoss)
	reports.Get("/state", reportHandler.ProfitLossState)
	reports.Get("/pdf", reportHandler.ProfitLossPDF)

	// Employees (admin)
	employees := protected.Group("/employees", RequireRole(entity.RoleAdmin))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Warehouses (bodega y admin)
	warehouses := protected.Group("/warehouses", RequireRole(entity.RoleWarehouse, entity.RoleAdmin))
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)
}
