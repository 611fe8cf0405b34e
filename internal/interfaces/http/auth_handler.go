package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/easypalm-console/internal/application/auth"
	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/domain"
)

// AuthHandler login, logout y estado de la sesión.
type AuthHandler struct {
	uc        *auth.AuthUseCase
	jwtSecret string
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, jwtSecret string) *AuthHandler {
	return &AuthHandler{uc: uc, jwtSecret: jwtSecret}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		// En el login un 401 es credencial incorrecta, no sesión perdida: sin redirect.
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "INVALID_CREDENTIALS",
				Message: "usuario o contraseña incorrectos",
			})
		}
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Idempotente: sin token o con sesión ya cerrada responde 204 igual.
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := sessionIDFromToken(c, h.jwtSecret)
	if err := h.uc.Logout(c.UserContext(), sid); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Session godoc
// @Summary      Estado de la sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(h.uc.SessionState(GetUser(c)))
}

// Menu godoc
// @Summary      Menú del rol de la sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MenuSectionDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/menu [get]
func (h *AuthHandler) Menu(c *fiber.Ctx) error {
	return c.JSON(h.uc.SessionState(GetUser(c)).Menu)
}
