// Package menu resuelve el menú de navegación de cada rol.
//
// La tabla es estática e inmutable: Resolve siempre devuelve copias.
// Un rol desconocido produce un menú vacío (nunca un error).
package menu

import (
	"fmt"
	"strings"

	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

// AdminLayout variante del menú del Admin. El frontend original tenía dos layouts
// que no coincidían; aquí ambos quedan disponibles y la integración elige.
type AdminLayout string

const (
	// AdminLayoutDedicated solo la sección propia del Admin (gestión de empleados).
	AdminLayoutDedicated AdminLayout = "dedicated"
	// AdminLayoutExtended layout de administración: tablero, empleados, precios y bodegas.
	AdminLayoutExtended AdminLayout = "extended"
	// AdminLayoutAll súper-acceso: sección del Admin más las de todos los demás roles.
	AdminLayoutAll AdminLayout = "all"
)

// ParseAdminLayout interpreta el valor de configuración MENU_ADMIN_LAYOUT.
func ParseAdminLayout(s string) (AdminLayout, error) {
	switch l := AdminLayout(strings.ToLower(strings.TrimSpace(s))); l {
	case AdminLayoutDedicated, AdminLayoutExtended, AdminLayoutAll:
		return l, nil
	case "":
		return AdminLayoutExtended, nil
	}
	return "", fmt.Errorf("menu: layout de admin desconocido %q", s)
}

// Resolver resuelve el menú por rol con la variante de Admin configurada.
type Resolver struct {
	adminLayout AdminLayout
}

// NewResolver construye el resolver. Un layout inválido cae en AdminLayoutExtended.
func NewResolver(layout AdminLayout) *Resolver {
	switch layout {
	case AdminLayoutDedicated, AdminLayoutExtended, AdminLayoutAll:
	default:
		layout = AdminLayoutExtended
	}
	return &Resolver{adminLayout: layout}
}

// AdminLayout devuelve la variante activa.
func (r *Resolver) AdminLayout() AdminLayout { return r.adminLayout }

// Resolve devuelve las secciones del rol, en orden estable.
func (r *Resolver) Resolve(role entity.Role) []entity.MenuSection {
	switch role {
	case entity.RoleAdmin:
		return r.admin()
	case entity.RolePurchasing:
		return clone(purchasingMenu)
	case entity.RoleWarehouse:
		return clone(warehouseMenu)
	case entity.RoleSales:
		return clone(salesMenu)
	case entity.RoleAccountant:
		return clone(accountantMenu)
	case entity.RoleExecutive:
		return clone(executiveMenu)
	}
	return []entity.MenuSection{}
}

func (r *Resolver) admin() []entity.MenuSection {
	switch r.adminLayout {
	case AdminLayoutDedicated:
		return clone(adminDedicatedMenu)
	case AdminLayoutAll:
		return superAccess()
	}
	return clone(adminExtendedMenu)
}

// superAccess une la sección extendida del Admin con las de los demás roles.
// Una ruta aparece una sola vez (gana la primera sección que la declara);
// las secciones que quedan vacías se omiten.
func superAccess() []entity.MenuSection {
	seen := make(map[string]bool)
	out := make([]entity.MenuSection, 0, 16)
	groups := [][]entity.MenuSection{
		adminExtendedMenu, purchasingMenu, warehouseMenu, salesMenu, accountantMenu, executiveMenu,
	}
	for _, g := range groups {
		for _, s := range g {
			items := make([]entity.MenuItem, 0, len(s.Items))
			for _, it := range s.Items {
				if seen[it.Path] {
					continue
				}
				seen[it.Path] = true
				items = append(items, it)
			}
			if len(items) > 0 {
				out = append(out, entity.MenuSection{Title: s.Title, Items: items})
			}
		}
	}
	return out
}

func clone(src []entity.MenuSection) []entity.MenuSection {
	out := make([]entity.MenuSection, len(src))
	for i, s := range src {
		items := make([]entity.MenuItem, len(s.Items))
		copy(items, s.Items)
		out[i] = entity.MenuSection{Title: s.Title, Items: items}
	}
	return out
}
