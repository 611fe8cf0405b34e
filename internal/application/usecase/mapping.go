package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/easypalm-console/internal/domain"
	"github.com/jhoicas/easypalm-console/internal/domain/aggregate"
)

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(aggregate.DateLayout)
	return &s
}

// requireID rechaza ids vacíos antes de armar la URL del backend.
func requireID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", domain.NewValidationError("id", "es requerido")
	}
	return id, nil
}
