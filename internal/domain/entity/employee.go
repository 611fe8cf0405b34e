package entity

// Employee empleado registrado en el backend (gestión de personal del Admin).
type Employee struct {
	ID            string
	Name          string
	Role          string // e_role tal como lo guarda el backend; puede no ser un Role válido
	Position      string
	Email         string
	Telephone     string
	CitizenIDCard string
	Active        bool
}
