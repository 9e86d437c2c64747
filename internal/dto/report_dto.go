package dto

// ─── Response DTOs ───────────────────────────────────────────────────────────

// SectorStat is one sector's completion percentage, with its display color
// so charts can stay consistent with the rest of the UI.
type SectorStat struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}

// TypeStat counts completed items per shift period.
type TypeStat struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ReportStats is the aggregate fed to charts and to the insight narrator.
type ReportStats struct {
	Sectors    []SectorStat `json:"sectors"`
	Types      []TypeStat   `json:"types"`
	TotalItems int          `json:"totalItems"`
}

type InsightsResponse struct {
	Insights string `json:"insights"`
}
