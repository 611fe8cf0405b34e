package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/domain"
	"github.com/jhoicas/easypalm-console/internal/domain/access"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
	"github.com/jhoicas/easypalm-console/pkg/jwt"
)

const (
	LocalUser      = "user"
	LocalSessionID = "session_id"

	// LoginPath ruta del frontend a la que se envía a quien no tiene sesión.
	LoginPath = "/login"
)

// sessionAuthenticator es el contrato mínimo que necesita el middleware para resolver la sesión.
// Lo implementa *auth.AuthUseCase.
type sessionAuthenticator interface {
	Authenticate(ctx context.Context, sessionID string) (*entity.User, error)
}

// AuthMiddleware valida el JWT, carga el usuario de la sesión y lo deja en Locals.
// Sin token, token inválido o sesión cerrada/vencida → 401 con redirect al login.
func AuthMiddleware(jwtSecret string, sessions sessionAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return unauthorized(c, "MISSING_TOKEN", "falta header Authorization Bearer")
		}
		claims, err := jwt.Parse(jwtSecret, token)
		if err != nil || claims.SessionID == "" {
			return unauthorized(c, "INVALID_TOKEN", "token inválido o expirado")
		}
		user, err := sessions.Authenticate(c.UserContext(), claims.SessionID)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return unauthorized(c, "SESSION_EXPIRED", "la sesión no existe o expiró")
			}
			return handleError(c, err)
		}
		c.Locals(LocalUser, user)
		c.Locals(LocalSessionID, claims.SessionID)
		return c.Next()
	}
}

// RequireRole deja pasar si el rol de la sesión es alguno de roles (entity.RoleAny = cualquiera).
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil || user.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:     "MISSING_ROLE",
				Message:  "la sesión no tiene rol asignado",
				Redirect: LoginPath,
			})
		}
		if !access.CanAccessAny(user, roles...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol " + string(user.Role) + " no tiene acceso a este recurso",
			})
		}
		return c.Next()
	}
}

// RequireCapability como RequireRole pero por capacidad (por ejemplo, editar precios).
func RequireCapability(capability access.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return unauthorized(c, "MISSING_ROLE", "la sesión no tiene rol asignado")
		}
		if !access.Can(user, capability) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "acción no permitida para el rol " + string(user.Role),
			})
		}
		return c.Next()
	}
}

// GetUser usuario autenticado (nil fuera de rutas protegidas).
func GetUser(c *fiber.Ctx) *entity.User {
	if v, ok := c.Locals(LocalUser).(*entity.User); ok {
		return v
	}
	return nil
}

// GetRole rol del usuario autenticado.
func GetRole(c *fiber.Ctx) entity.Role {
	if u := GetUser(c); u != nil {
		return u.Role
	}
	return ""
}

// GetSessionID id de la sesión del request.
func GetSessionID(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalSessionID).(string); ok {
		return v
	}
	return ""
}

// sessionIDFromToken extrae el sid sin exigir que el token sea válido para Authenticate.
// Lo usa logout, que nunca falla por falta de sesión.
func sessionIDFromToken(c *fiber.Ctx, jwtSecret string) string {
	token := bearerToken(c)
	if token == "" {
		return ""
	}
	claims, err := jwt.Parse(jwtSecret, token)
	if err != nil {
		return ""
	}
	return claims.SessionID
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if auth == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

func unauthorized(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:     code,
		Message:  message,
		Redirect: LoginPath,
	})
}
