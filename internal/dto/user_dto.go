package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaveUserRequest struct {
	Name     string  `json:"name"     validate:"required,min=2,max=100"`
	Email    string  `json:"email"    validate:"required,email"`
	Role     string  `json:"role"     validate:"required,oneof=manager operator"`
	SectorID *string `json:"sectorId"`
	PhotoURL *string `json:"photoUrl" validate:"omitempty,url"`
}
