package dto

// MenuItemDTO entrada de navegación.
type MenuItemDTO struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// MenuSectionDTO grupo de entradas con título.
type MenuSectionDTO struct {
	Title string        `json:"title"`
	Items []MenuItemDTO `json:"items"`
}
