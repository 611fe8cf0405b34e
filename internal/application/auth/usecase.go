package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain"
	"github.com/jhoicas/easypalm-console/internal/domain/access"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
	"github.com/jhoicas/easypalm-console/internal/domain/menu"
	"github.com/jhoicas/easypalm-console/internal/domain/repository"
	"github.com/jhoicas/easypalm-console/pkg/jwt"
	"github.com/jhoicas/easypalm-console/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionCloser se notifica al cerrar una sesión para liberar el estado asociado
// (por ejemplo, el ciclo del reporte de pérdidas y ganancias).
type SessionCloser interface {
	Remove(sessionID string)
}

// AuthUseCase login, logout y resolución de la sesión de cada request.
type AuthUseCase struct {
	gateway  ports.AuthGateway
	sessions repository.SessionRepository
	menus    *menu.Resolver
	closers  []SessionCloser
	jwtCfg   JWTConfig
	now      func() time.Time
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	gateway ports.AuthGateway,
	sessions repository.SessionRepository,
	menus *menu.Resolver,
	jwtCfg JWTConfig,
	log *logger.Logger,
	closers ...SessionCloser,
) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		gateway:  gateway,
		sessions: sessions,
		menus:    menus,
		closers:  closers,
		jwtCfg:   jwtCfg,
		now:      time.Now,
		log:      log.Component("auth"),
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *AuthUseCase) WithClock(now func() time.Time) *AuthUseCase {
	uc.now = now
	return uc
}

// Login valida credenciales contra el backend, crea la sesión y emite el token.
// Un rol que la consola no conoce se rechaza con domain.ErrForbidden: sin rol no hay menú.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	user, err := uc.gateway.Login(ctx, ports.Credentials{Username: in.Username, Password: in.Password})
	if err != nil {
		return nil, err
	}

	role, err := entity.ParseRole(string(user.Role))
	if err != nil {
		uc.log.Warn().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login con rol desconocido")
		return nil, fmt.Errorf("%w: %v", domain.ErrForbidden, err)
	}
	user.Role = role

	session := &entity.Session{
		ID:        uuid.NewString(),
		User:      *user,
		CreatedAt: uc.now(),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("auth: guardar sesión: %w", err)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, session.ID, user.ID, string(role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		_ = uc.sessions.Delete(ctx, session.ID)
		return nil, fmt.Errorf("auth: generar token: %w", err)
	}

	uc.log.Info().Str("user_id", user.ID).Str("role", string(role)).Msg("login")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		Session:   uc.SessionState(user),
	}, nil
}

// Authenticate carga el usuario de la sesión indicada.
// Sesión inexistente o vencida → domain.ErrUnauthorized.
func (uc *AuthUseCase) Authenticate(ctx context.Context, sessionID string) (*entity.User, error) {
	if sessionID == "" {
		return nil, domain.ErrUnauthorized
	}
	s, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("auth: leer sesión: %w", err)
	}
	if s == nil {
		return nil, domain.ErrUnauthorized
	}
	if uc.jwtCfg.ExpMinutes > 0 && uc.now().After(s.CreatedAt.Add(time.Duration(uc.jwtCfg.ExpMinutes)*time.Minute)) {
		uc.release(ctx, sessionID)
		return nil, domain.ErrUnauthorized
	}
	u := s.User
	return &u, nil
}

// Logout elimina la sesión y su estado asociado. Idempotente: sin sesión no falla.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("auth: eliminar sesión: %w", err)
	}
	for _, c := range uc.closers {
		c.Remove(sessionID)
	}
	uc.log.Info().Str("session_id", sessionID).Msg("logout")
	return nil
}

// SessionState usuario, menú de su rol y capacidades.
func (uc *AuthUseCase) SessionState(user *entity.User) dto.SessionResponse {
	if user == nil {
		return dto.SessionResponse{Menu: []dto.MenuSectionDTO{}}
	}
	return dto.SessionResponse{
		User:         dto.UserDTO{ID: user.ID, DisplayName: user.DisplayName, Role: string(user.Role)},
		Menu:         toMenuDTO(uc.menus.Resolve(user.Role)),
		CanEditPrice: access.CanEditPrice(user),
	}
}

func (uc *AuthUseCase) release(ctx context.Context, sessionID string) {
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		uc.log.Warn().Err(err).Str("session_id", sessionID).Msg("no se pudo eliminar sesión vencida")
	}
	for _, c := range uc.closers {
		c.Remove(sessionID)
	}
}

func toMenuDTO(sections []entity.MenuSection) []dto.MenuSectionDTO {
	out := make([]dto.MenuSectionDTO, 0, len(sections))
	for _, s := range sections {
		items := make([]dto.MenuItemDTO, 0, len(s.Items))
		for _, it := range s.Items {
			items = append(items, dto.MenuItemDTO{Icon: it.Icon, Label: it.Label, Path: it.Path})
		}
		out = append(out, dto.MenuSectionDTO{Title: s.Title, Items: items})
	}
	return out
}
