package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/easypalm-console/internal/application/analytics"
	"github.com/jhoicas/easypalm-console/internal/application/dto"
)

// ReportHandler reporte de pérdidas y ganancias de la sesión.
type ReportHandler struct {
	uc *appanalytics.ProfitLossUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ProfitLossUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SubmitProfitLoss godoc
// @Summary      Consultar pérdidas y ganancias
// @Description  Un envío mientras otro está en curso responde 409 sin llamar al backend.
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProfitLossRequest  true  "Rango de fechas"
// @Success      200   {object}  dto.ProfitLossReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/reports/profit-loss [post]
func (h *ReportHandler) SubmitProfitLoss(c *fiber.Ctx) error {
	var in dto.ProfitLossRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Submit(c.UserContext(), GetSessionID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ProfitLossState godoc
// @Summary      Estado del reporte de la sesión
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfitLossStateDTO
// @Router       /api/reports/profit-loss/state [get]
func (h *ReportHandler) ProfitLossState(c *fiber.Ctx) error {
	return c.JSON(h.uc.State(GetSessionID(c)))
}

// ProfitLossPDF godoc
// @Summary      Exportar el último reporte a PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/profit-loss/pdf [get]
func (h *ReportHandler) ProfitLossPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.ExportPDF(c.UserContext(), GetSessionID(c))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
