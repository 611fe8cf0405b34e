package entity

// Farmer agricultor proveedor de fruta de palma. NationalIDCard es único en el backend.
type Farmer struct {
	ID             string
	Name           string
	NationalIDCard string
	Telephone      string
	Address        string
}
