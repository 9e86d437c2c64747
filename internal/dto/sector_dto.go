package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaveSectorRequest struct {
	Name         string  `json:"name"         validate:"required,min=2,max=100"`
	Description  *string `json:"description"`
	Color        string  `json:"color"        validate:"required,hexadecimal,len=6"`
	Icon         string  `json:"icon"         validate:"required"`
	DisplayOrder int     `json:"displayOrder" validate:"min=0"`
}

