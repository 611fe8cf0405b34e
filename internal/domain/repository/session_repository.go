package repository

import (
	"context"

	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// SessionRepository define el puerto de persistencia de sesiones (par accesor/mutador).
// Las implementaciones deben ser seguras para uso concurrente.
type SessionRepository interface {
	// Save crea o reemplaza la sesión.
	Save(ctx context.Context, s *entity.Session) error
	// Get devuelve (nil, nil) si la sesión no existe.
	Get(ctx context.Context, id string) (*entity.Session, error)
	// Delete es idempotente: borrar una sesión inexistente no es un error.
	Delete(ctx context.Context, id string) error
}
