package menu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/easypalm-console/internal/domain/entity"
	"github.com/jhoicas/easypalm-console/internal/domain/menu"
)

func TestResolve_TodosLosRolesTienenMenu(t *testing.T) {
	for _, layout := range []menu.AdminLayout{menu.AdminLayoutDedicated, menu.AdminLayoutExtended, menu.AdminLayoutAll} {
		r := menu.NewResolver(layout)
		for _, role := range entity.AllRoles() {
			sections := r.Resolve(role)
			require.NotEmpty(t, sections, "rol %s (layout %s) debe tener menú", role, layout)
			for _, s := range sections {
				assert.NotEmpty(t, s.Title)
				assert.NotEmpty(t, s.Items, "la sección %q de %s no debe estar vacía", s.Title, role)
			}
		}
	}
}

func TestResolve_Determinista(t *testing.T) {
	r := menu.NewResolver(menu.AdminLayoutAll)
	for _, role := range entity.AllRoles() {
		assert.Equal(t, r.Resolve(role), r.Resolve(role), "el menú de %s debe ser estable", role)
	}
}

func TestResolve_RolDesconocidoMenuVacio(t *testing.T) {
	r := menu.NewResolver(menu.AdminLayoutExtended)

	for _, role := range []entity.Role{"", "Finance", "admin ", entity.RoleAny} {
		sections := r.Resolve(role)
		assert.NotNil(t, sections)
		assert.Empty(t, sections, "rol %q no debe tener menú", role)
	}
}

func TestResolve_DevuelveCopias(t *testing.T) {
	r := menu.NewResolver(menu.AdminLayoutExtended)

	first := r.Resolve(entity.RoleSales)
	first[0].Title = "modificado"
	first[0].Items[0].Path = "/hack"

	second := r.Resolve(entity.RoleSales)
	assert.NotEqual(t, "modificado", second[0].Title)
	assert.Equal(t, "/sales/create-so", second[0].Items[0].Path)
}

func TestResolve_LayoutsDelAdmin(t *testing.T) {
	dedicated := menu.NewResolver(menu.AdminLayoutDedicated).Resolve(entity.RoleAdmin)
	require.Len(t, dedicated, 1)
	assert.Equal(t, []string{"/admin/employees"}, paths(dedicated))

	extended := menu.NewResolver(menu.AdminLayoutExtended).Resolve(entity.RoleAdmin)
	assert.Equal(t, []string{
		"/admin/dashboard", "/admin/employees", "/products", "/admin/warehouse-management",
	}, paths(extended))

	all := menu.NewResolver(menu.AdminLayoutAll).Resolve(entity.RoleAdmin)
	allPaths := paths(all)
	assert.Equal(t, extended[0].Items[0].Path, allPaths[0], "el súper-acceso empieza por la sección del Admin")
	for _, role := range entity.AllRoles() {
		for _, p := range paths(menu.NewResolver(menu.AdminLayoutDedicated).Resolve(role)) {
			assert.Contains(t, allPaths, p, "el súper-acceso debe incluir %s", p)
		}
	}
}

func TestResolve_SuperAccesoSinRutasDuplicadas(t *testing.T) {
	all := menu.NewResolver(menu.AdminLayoutAll).Resolve(entity.RoleAdmin)
	seen := map[string]bool{}
	for _, p := range paths(all) {
		assert.False(t, seen[p], "ruta duplicada %s", p)
		seen[p] = true
	}
}

func TestParseAdminLayout(t *testing.T) {
	l, err := menu.ParseAdminLayout("ALL")
	require.NoError(t, err)
	assert.Equal(t, menu.AdminLayoutAll, l)

	l, err = menu.ParseAdminLayout("")
	require.NoError(t, err)
	assert.Equal(t, menu.AdminLayoutExtended, l)

	_, err = menu.ParseAdminLayout("sidebar")
	assert.Error(t, err)

	assert.Equal(t, menu.AdminLayoutExtended, menu.NewResolver("raro").AdminLayout())
}

func paths(sections []entity.MenuSection) []string {
	var out []string
	for _, s := range sections {
		for _, it := range s.Items {
			out = append(out, it.Path)
		}
	}
	return out
}
