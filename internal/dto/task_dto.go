package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaveTaskRequest struct {
	SectorID         string   `json:"sectorId"         validate:"required"`
	Type             string   `json:"type"             validate:"required,oneof=opening general closing"`
	Title            string   `json:"title"            validate:"required,min=2,max=200"`
	Description      *string  `json:"description"`
	DisplayOrder     int      `json:"displayOrder"     validate:"min=0"`
	DaysOfWeek       []string `json:"daysOfWeek"       validate:"required,min=1,dive,oneof=mon tue wed thu fri sat sun"`
	Required         bool     `json:"required"`
	RequiresPhoto    bool     `json:"requiresPhoto"`
	EstimatedMinutes *int     `json:"estimatedMinutes" validate:"omitempty,min=1"`
}
