package dto

import "time"

// IndustryRequest alta o edición de un cliente industrial.
type IndustryRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Telephone string `json:"telephone" validate:"required,max=20"`
	Address   string `json:"address" validate:"max=500"`
}

// IndustryResponse cliente industrial.
type IndustryResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Telephone string     `json:"telephone"`
	Address   string     `json:"address"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
