package entity

import (
	"fmt"
	"strings"
	"time"
)

// Role rol de un empleado de EasyPalm. Conjunto cerrado: cualquier otro valor se rechaza.
type Role string

// Roles válidos para User.
const (
	RoleAdmin      Role = "Admin"
	RolePurchasing Role = "Purchasing"
	RoleWarehouse  Role = "Warehouse"
	RoleSales      Role = "Sales"
	RoleAccountant Role = "Accountant"
	RoleExecutive  Role = "Executive"

	// RoleAny comodín "cualquier usuario autenticado". Nunca se asigna a un User.
	RoleAny Role = "*"
)

// AllRoles devuelve los seis roles asignables en orden estable.
func AllRoles() []Role {
	return []Role{RoleAdmin, RolePurchasing, RoleWarehouse, RoleSales, RoleAccountant, RoleExecutive}
}

// Valid indica si r es uno de los seis roles asignables (RoleAny no cuenta).
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePurchasing, RoleWarehouse, RoleSales, RoleAccountant, RoleExecutive:
		return true
	}
	return false
}

// ParseRole interpreta el e_role del backend sin distinguir mayúsculas.
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	for _, r := range AllRoles() {
		if strings.EqualFold(string(r), s) {
			return r, nil
		}
	}
	return "", fmt.Errorf("rol desconocido: %q", s)
}

// User representa al empleado autenticado (viene de la respuesta de login del backend).
type User struct {
	ID          string
	DisplayName string
	Role        Role
}

// Session asocia un User a un identificador de sesión persistido en el SessionStore.
// Vive desde el login hasta el logout o hasta que se limpia el almacenamiento.
type Session struct {
	ID        string
	User      User
	CreatedAt time.Time
}
