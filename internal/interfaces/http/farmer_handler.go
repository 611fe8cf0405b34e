package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/usecase"
)

// FarmerHandler agricultores (rol Purchasing).
type FarmerHandler struct {
	uc *usecase.FarmerUseCase
}

// NewFarmerHandler construye el handler.
func NewFarmerHandler(uc *usecase.FarmerUseCase) *FarmerHandler {
	return &FarmerHandler{uc: uc}
}

// List godoc
// @Summary      Listar agricultores
// @Tags         farmers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.FarmerResponse]
// @Router       /api/farmers [get]
func (h *FarmerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

// GetByID godoc
// @Summary      Obtener agricultor
// @Tags         farmers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del agricultor"
// @Success      200  {object}  dto.FarmerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/farmers/{id} [get]
func (h *FarmerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar agricultor
// @Tags         farmers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FarmerRequest  true  "Datos del agricultor"
// @Success      201   {object}  dto.FarmerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/farmers [post]
func (h *FarmerHandler) Create(c *fiber.Ctx) error {
	var in dto.FarmerRequest
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
// @Summary      Editar agricultor
// @Tags         farmers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del agricultor"
// @Param        body  body  dto.FarmerRequest  true  "Datos del agricultor"
// @Success      200   {object}  dto.FarmerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/farmers/{id} [put]
func (h *FarmerHandler) Update(c *fiber.Ctx) error {
	var in dto.FarmerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
