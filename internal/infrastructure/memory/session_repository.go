// Package memory implementa puertos de persistencia en memoria del proceso.
// Se usa en desarrollo (SESSION_STORE=memory) y en tests.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/easypalm-console/internal/domain/entity"
	"github.com/jhoicas/easypalm-console/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo sesiones en un mapa protegido por mutex. Se pierden al reiniciar.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

// NewSessionRepository construye el almacén vacío.
func NewSessionRepository() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]entity.Session)}
}

// Save guarda una copia de la sesión.
func (r *SessionRepo) Save(_ context.Context, s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

// Get devuelve una copia; (nil, nil) si no existe.
func (r *SessionRepo) Get(_ context.Context, id string) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// Delete borra la sesión si existe.
func (r *SessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// Len número de sesiones activas.
func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
