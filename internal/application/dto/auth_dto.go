package dto

// LoginRequest credenciales del empleado (las valida el backend).
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

// UserDTO usuario autenticado.
type UserDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// SessionResponse estado de la sesión: usuario, menú y capacidades.
type SessionResponse struct {
	User         UserDTO          `json:"user"`
	Menu         []MenuSectionDTO `json:"menu"`
	CanEditPrice bool             `json:"can_edit_price"`
}

// LoginResponse token de sesión más el estado inicial.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expires_in"` // segundos
	Session   SessionResponse `json:"session"`
}
