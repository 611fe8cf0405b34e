package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/easypalm-console/internal/application/analytics"
)

// DashboardHandler tableros del administrador y del ejecutivo.
type DashboardHandler struct {
	uc        *appanalytics.DashboardUseCase
	executive *appanalytics.ExecutiveDashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, executive *appanalytics.ExecutiveDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, executive: executive}
}

// GetAdminSummary devuelve indicadores del día, el gráfico de compras de los
// últimos 7 días (huecos en cero) y las compras recientes.
// @Summary      Tablero del administrador
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminDashboardDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard/admin [get]
func (h *DashboardHandler) GetAdminSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetAdminSummary(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetExecutiveSummary indicadores acumulados, ventas contra compras de los
// últimos 30 días (huecos en cero) y las órdenes recientes.
// @Summary      Tablero del ejecutivo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExecutiveDashboardDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard/executive [get]
func (h *DashboardHandler) GetExecutiveSummary(c *fiber.Ctx) error {
	out, err := h.executive.GetSummary(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
