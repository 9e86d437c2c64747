package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ToggleRequest drives both legs of the completion state machine. PhotoURL
// and Note accompany pending → completed when the task asks for a photo;
// ConfirmUnmark is the explicit gate for completed → pending.
type ToggleRequest struct {
	PhotoURL      string `json:"photoUrl" validate:"omitempty,url"`
	Note          string `json:"note"     validate:"omitempty,max=500"`
	ConfirmUnmark bool   `json:"confirmUnmark"`
}
