package entity

// Warehouse bodega física donde se almacena el producto.
type Warehouse struct {
	ID       string
	Name     string
	Location string
}
