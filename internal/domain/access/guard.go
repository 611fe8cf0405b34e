// Package access contiene los predicados de autorización por rol y capacidad.
// Son funciones puras: quien llama decide si redirige al login (401) o niega (403).
package access

import "github.com/jhoicas/easypalm-console/internal/domain/entity"

// Capability acción concreta permitida con independencia del rol completo.
type Capability string

// CapabilityEditPrice permite modificar price_per_unit de un producto.
const CapabilityEditPrice Capability = "product:edit_price"

// RequireAuth true si hay un usuario cargado desde el estado de sesión (hubo login).
func RequireAuth(user *entity.User) bool {
	return user != nil
}

// CanAccess true si el usuario está autenticado, su rol es válido y coincide con
// required, o required es el comodín entity.RoleAny.
func CanAccess(user *entity.User, required entity.Role) bool {
	if !RequireAuth(user) || !user.Role.Valid() {
		return false
	}
	return required == entity.RoleAny || user.Role == required
}

// CanAccessAny true si CanAccess se cumple para alguno de los roles.
func CanAccessAny(user *entity.User, roles ...entity.Role) bool {
	for _, r := range roles {
		if CanAccess(user, r) {
			return true
		}
	}
	return false
}

// CanEditPrice solo el Admin puede cambiar precios.
func CanEditPrice(user *entity.User) bool {
	return CanAccess(user, entity.RoleAdmin)
}

// Can evalúa una capacidad por nombre. Capacidades desconocidas se niegan.
func Can(user *entity.User, c Capability) bool {
	switch c {
	case CapabilityEditPrice:
		return CanEditPrice(user)
	}
	return false
}
