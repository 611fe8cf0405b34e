package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/easypalm-console/internal/application/ports"
	"github.com/jhoicas/easypalm-console/internal/domain"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

var _ ports.AuthGateway = (*Client)(nil)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	User    *struct {
		ID   flexString `json:"e_id"`
		Name string     `json:"e_name"`
		Role string     `json:"e_role"`
	} `json:"user"`
}

// Login valida las credenciales contra POST /login.
// El rol se devuelve tal cual; interpretarlo es responsabilidad del caso de uso.
func (c *Client) Login(ctx context.Context, cred ports.Credentials) (*entity.User, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/login", nil, loginRequest{Username: cred.Username, Password: cred.Password}, &resp)
	if err != nil {
		switch statusOf(err) {
		case http.StatusUnauthorized:
			return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
		case http.StatusForbidden:
			// cuenta suspendida
			return nil, fmt.Errorf("%w: %v", domain.ErrForbidden, err)
		}
		return nil, err
	}
	if resp.User == nil || resp.User.ID == "" {
		return nil, fmt.Errorf("%w: login sin datos de usuario", domain.ErrServer)
	}
	return &entity.User{
		ID:          string(resp.User.ID),
		DisplayName: resp.User.Name,
		Role:        entity.Role(resp.User.Role),
	}, nil
}
