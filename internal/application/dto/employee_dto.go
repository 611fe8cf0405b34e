package dto

// CreateEmployeeRequest alta de empleado; username y password son obligatorios.
type CreateEmployeeRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Role          string `json:"role" validate:"required"`
	Position      string `json:"position" validate:"required,max=100"`
	Email         string `json:"email" validate:"omitempty,email"`
	Telephone     string `json:"telephone" validate:"omitempty,numeric,max=10"`
	CitizenIDCard string `json:"citizen_id_card" validate:"required,numeric,len=13"`
	Username      string `json:"username" validate:"required,max=100"`
	Password      string `json:"password" validate:"required,min=4,max=200"`
}

// UpdateEmployeeRequest edición; password vacío conserva la contraseña actual.
type UpdateEmployeeRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Role      string `json:"role" validate:"required"`
	Position  string `json:"position" validate:"required,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Telephone string `json:"telephone" validate:"omitempty,numeric,max=10"`
	Password  string `json:"password" validate:"omitempty,min=4,max=200"`
}

// EmployeeResponse empleado (sin credenciales).
type EmployeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Position  string `json:"position"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Active    bool   `json:"active"`
}
