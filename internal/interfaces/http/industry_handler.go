package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/usecase"
)

// IndustryHandler clientes industriales (rol Sales).
type IndustryHandler struct {
	uc *usecase.IndustryUseCase
}

// NewIndustryHandler construye el handler.
func NewIndustryHandler(uc *usecase.IndustryUseCase) *IndustryHandler {
	return &IndustryHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes industriales
// @Tags         industries
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.IndustryResponse]
// @Router       /api/industries [get]
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

// GetByID godoc
// @Summary      Obtener cliente industrial
// @Tags         industries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.IndustryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/industries/{id} [get]
func (h *IndustryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar cliente industrial
// @Tags         industries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IndustryRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.IndustryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/industries [post]
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	var in dto.IndustryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar cliente industrial
// @Tags         industries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del cliente"
// @Param        body  body  dto.IndustryRequest  true  "Datos del cliente"
// @Success      200   {object}  dto.IndustryResponse
// @Router       /api/industries/{id} [put]
func (h *IndustryHandler) Update(c *fiber.Ctx) error {
	var in dto.IndustryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente industrial
// @Tags         industries
// @Security     Bearer
// @Param        id   path  string  true  "ID del cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/industries/{id} [delete]
func (h *IndustryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
