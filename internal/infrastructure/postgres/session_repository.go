package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/easypalm-console/internal/domain/entity"
	"github.com/jhoicas/easypalm-console/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

const sessionsSchema = `
	CREATE TABLE IF NOT EXISTS console_sessions (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		display_name TEXT NOT NULL,
		role         TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL
	)`

// SessionRepo implementación del puerto SessionRepository sobre PostgreSQL.
// Permite que las sesiones sobrevivan reinicios y se compartan entre réplicas.
type SessionRepo struct {
	pool *pgxpool.Pool
}

// NewSessionRepository construye el adaptador de persistencia para sesiones.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

// EnsureSchema crea la tabla de sesiones si no existe.
func (r *SessionRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, sessionsSchema); err != nil {
		return fmt.Errorf("create console_sessions: %w", err)
	}
	return nil
}

// Save inserta o reemplaza la sesión.
func (r *SessionRepo) Save(ctx context.Context, s *entity.Session) error {
	query := `
		INSERT INTO console_sessions (id, user_id, display_name, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET user_id = EXCLUDED.user_id, display_name = EXCLUDED.display_name, role = EXCLUDED.role`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.User.ID, s.User.DisplayName, string(s.User.Role), s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Get obtiene una sesión por ID; (nil, nil) si no existe.
// El rol se devuelve tal como está guardado: si no es válido, el guard de acceso lo niega.
func (r *SessionRepo) Get(ctx context.Context, id string) (*entity.Session, error) {
	query := `
		SELECT id, user_id, display_name, role, created_at
		FROM console_sessions WHERE id = $1`
	var (
		s    entity.Session
		role string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.User.ID, &s.User.DisplayName, &role, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	s.User.Role = entity.Role(role)
	return &s, nil
}

// Delete elimina la sesión; no falla si no existe.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM console_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
