package entity

// MenuItem entrada de navegación: referencia de ícono, etiqueta visible y ruta del frontend.
type MenuItem struct {
	Icon  string
	Label string
	Path  string
}

// MenuSection grupo titulado de entradas de navegación.
type MenuSection struct {
	Title string
	Items []MenuItem
}
