package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/easypalm-console/internal/domain/entity"
	"github.com/jhoicas/easypalm-console/internal/infrastructure/postgres"
	"github.com/jhoicas/easypalm-console/pkg/config"
)

// Pruebas de integración: necesitan TEST_DATABASE_URL (entorno o .env.test en la raíz).
// Sin ella se omiten.
var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	_ = godotenv.Load("../../../.env.test")

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 4})
	cancel()
	if err != nil {
		panic("conectar a TEST_DATABASE_URL: " + err.Error())
	}
	testPool = pool

	code := m.Run()
	pool.Close()
	os.Exit(code)
}

func newRepo(t *testing.T) *postgres.SessionRepo {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL no definida")
	}
	repo := postgres.NewSessionRepository(testPool)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func newSession(role entity.Role) *entity.Session {
	return &entity.Session{
		ID:        uuid.NewString(),
		User:      entity.User{ID: "emp-" + uuid.NewString()[:8], DisplayName: "สมชาย ใจดี", Role: role},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestSessionRepo_EnsureSchemaEsIdempotente(t *testing.T) {
	repo := newRepo(t)
	assert.NoError(t, repo.EnsureSchema(context.Background()))
}

func TestSessionRepo_GuardaYRecupera(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	s := newSession(entity.RoleAccountant)
	t.Cleanup(func() { _ = repo.Delete(context.Background(), s.ID) })

	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, s.User, got.User)
	assert.True(t, s.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", s.CreatedAt, got.CreatedAt)
}

func TestSessionRepo_SaveReemplazaSinTocarCreatedAt(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	s := newSession(entity.RoleSales)
	t.Cleanup(func() { _ = repo.Delete(context.Background(), s.ID) })
	require.NoError(t, repo.Save(ctx, s))

	updated := *s
	updated.User.DisplayName = "สมชาย (ผู้จัดการ)"
	updated.User.Role = entity.RoleExecutive
	updated.CreatedAt = s.CreatedAt.Add(time.Hour)
	require.NoError(t, repo.Save(ctx, &updated))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "สมชาย (ผู้จัดการ)", got.User.DisplayName)
	assert.Equal(t, entity.RoleExecutive, got.User.Role)
	assert.True(t, s.CreatedAt.Equal(got.CreatedAt), "el upsert no cambia created_at")
}

func TestSessionRepo_RolDesconocidoSeDevuelveTalCual(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	s := newSession(entity.Role("Finance"))
	t.Cleanup(func() { _ = repo.Delete(context.Background(), s.ID) })
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.Role("Finance"), got.User.Role)
}

func TestSessionRepo_GetInexistenteDevuelveNil(t *testing.T) {
	repo := newRepo(t)
	got, err := repo.Get(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRepo_DeleteEsIdempotente(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	s := newSession(entity.RoleAdmin)
	require.NoError(t, repo.Save(ctx, s))

	require.NoError(t, repo.Delete(ctx, s.ID))
	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, repo.Delete(ctx, s.ID), "borrar dos veces no falla")
}
