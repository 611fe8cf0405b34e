package entity

import "time"

// Industry cliente industrial (food industry) que compra producto procesado.
type Industry struct {
	ID        string
	Name      string
	Telephone string
	Address   string
	CreatedAt *time.Time
}
