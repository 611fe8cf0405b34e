package dto

// FarmerRequest alta o edición de un agricultor.
type FarmerRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	NationalIDCard string `json:"national_id_card" validate:"required,numeric,len=13"`
	Telephone      string `json:"telephone" validate:"required,numeric,min=9,max=10"`
	Address        string `json:"address" validate:"max=500"`
}

// FarmerResponse agricultor.
type FarmerResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NationalIDCard string `json:"national_id_card"`
	Telephone      string `json:"telephone"`
	Address        string `json:"address"`
}
