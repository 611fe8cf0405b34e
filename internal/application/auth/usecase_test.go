package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/easypalm-console/internal/application/auth"
	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
	"github.com/jhoicas/easypalm-console/internal/domain/menu"
	"github.com/jhoicas/easypalm-console/internal/infrastructure/memory"
	"github.com/jhoicas/easypalm-console/pkg/jwt"
)

// ─── Fakes ────────────────────────────────────────────────────────────────────

type fakeGateway struct {
	user  *entity.User
	err   error
	calls int
}

func (f *fakeGateway) Login(_ context.Context, _ ports.Credentials) (*entity.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	u := *f.user
	return &u, nil
}

type closerSpy struct{ removed []string }

func (c *closerSpy) Remove(id string) { c.removed = append(c.removed, id) }

var jwtCfg = auth.JWTConfig{Secret: "secreto", ExpMinutes: 60, Issuer: "test"}

func newUseCase(gw *fakeGateway) (*auth.AuthUseCase, *memory.SessionRepo, *closerSpy) {
	repo := memory.NewSessionRepository()
	spy := &closerSpy{}
	uc := auth.NewAuthUseCase(gw, repo, menu.NewResolver(menu.AdminLayoutExtended), jwtCfg, nil, spy)
	return uc, repo, spy
}

// ─── Login ────────────────────────────────────────────────────────────────────

func TestLogin_CreaSesionYToken(t *testing.T) {
	gw := &fakeGateway{user: &entity.User{ID: "E001", DisplayName: "สมชาย", Role: "admin"}}
	uc, repo, _ := newUseCase(gw)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "somchai", Password: "1234"})
	require.NoError(t, err)

	assert.Equal(t, "Admin", resp.Session.User.Role, "el rol se normaliza")
	assert.True(t, resp.Session.CanEditPrice)
	assert.NotEmpty(t, resp.Session.Menu)
	assert.Equal(t, 3600, resp.ExpiresIn)

	claims, err := jwt.Parse(jwtCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "E001", claims.UserID)
	assert.Equal(t, 1, repo.Len())

	u, err := uc.Authenticate(context.Background(), claims.SessionID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, u.Role)
}

func TestLogin_ValidacionNoLlamaAlBackend(t *testing.T) {
	gw := &fakeGateway{user: &entity.User{ID: "E001", Role: "Sales"}}
	uc, _, _ := newUseCase(gw)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, gw.calls)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	gw := &fakeGateway{err: domain.ErrUnauthorized}
	uc, repo, _ := newUseCase(gw)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "x", Password: "y"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, repo.Len())
}

func TestLogin_RolDesconocidoSeRechaza(t *testing.T) {
	gw := &fakeGateway{user: &entity.User{ID: "E009", Role: "Finance"}}
	uc, repo, _ := newUseCase(gw)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "x", Password: "y"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, repo.Len(), "sin sesión para roles desconocidos")
}

// ─── Sesión ───────────────────────────────────────────────────────────────────

func TestAuthenticate_SesionInexistente(t *testing.T) {
	uc, _, _ := newUseCase(&fakeGateway{})

	_, err := uc.Authenticate(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_SesionVencida(t *testing.T) {
	gw := &fakeGateway{user: &entity.User{ID: "E001", Role: "Sales"}}
	uc, repo, spy := newUseCase(gw)

	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	uc.WithClock(func() time.Time { return now })

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "x", Password: "y"})
	require.NoError(t, err)
	claims, err := jwt.Parse(jwtCfg.Secret, resp.Token)
	require.NoError(t, err)

	now = now.Add(61 * time.Minute)
	_, err = uc.Authenticate(context.Background(), claims.SessionID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, repo.Len())
	assert.Equal(t, []string{claims.SessionID}, spy.removed)
}

func TestLogout_IdempotenteYNotifica(t *testing.T) {
	gw := &fakeGateway{user: &entity.User{ID: "E001", Role: "Executive"}}
	uc, repo, spy := newUseCase(gw)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "x", Password: "y"})
	require.NoError(t, err)
	claims, err := jwt.Parse(jwtCfg.Secret, resp.Token)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), claims.SessionID))
	require.NoError(t, uc.Logout(context.Background(), claims.SessionID))
	require.NoError(t, uc.Logout(context.Background(), ""))

	assert.Zero(t, repo.Len())
	assert.Equal(t, []string{claims.SessionID, claims.SessionID}, spy.removed)

	_, err = uc.Authenticate(context.Background(), claims.SessionID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionState_SinUsuario(t *testing.T) {
	uc, _, _ := newUseCase(&fakeGateway{})
	s := uc.SessionState(nil)
	assert.Empty(t, s.Menu)
	assert.False(t, s.CanEditPrice)
}
