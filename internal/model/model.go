package model

import "time"

// Role identifies what a user is allowed to do.
// "manager" administers sectors/tasks/users and reads reports;
// "operator" works through daily checklists.
type Role string

const (
	RoleManager  Role = "manager"
	RoleOperator Role = "operator"
)

// TaskType categorizes when during the day a task applies.
type TaskType string

const (
	TypeOpening TaskType = "opening"
	TypeGeneral TaskType = "general"
	TypeClosing TaskType = "closing"
)

// Weekday is the three-letter weekday code used in task schedules.
type Weekday string

const (
	Mon Weekday = "mon"
	Tue Weekday = "tue"
	Wed Weekday = "wed"
	Thu Weekday = "thu"
	Fri Weekday = "fri"
	Sat Weekday = "sat"
	Sun Weekday = "sun"
)

// WeekdayOf maps a time.Time to its schedule code.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Mon
	case time.Tuesday:
		return Tue
	case time.Wednesday:
		return Wed
	case time.Thursday:
		return Thu
	case time.Friday:
		return Fri
	case time.Saturday:
		return Sat
	default:
		return Sun
	}
}

// DayStart truncates t to the start of its local calendar day.
// Checklist dates are compared by exact equality against this value.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// User is a staff member. SectorID is only meaningful for operators and is
// not enforced by the store.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	SectorID  *string   `json:"sectorId,omitempty"`
	PhotoURL  *string   `json:"photoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sector is a physical/operational area of the restaurant with its own
// task checklist. DisplayOrder drives presentation ordering only;
// duplicates are permitted and resolve insertion-stable.
type Sector struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Color        string    `json:"color"` // hex, without leading '#'
	Icon         Icon      `json:"icon"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Task is a recurring checklist item template scoped to a sector, shift
// period and weekday set. It carries no date of its own.
type Task struct {
	ID               string    `json:"id"`
	SectorID         string    `json:"sectorId"`
	Type             TaskType  `json:"type"`
	Title            string    `json:"title"`
	Description      *string   `json:"description,omitempty"`
	DisplayOrder     int       `json:"displayOrder"`
	DaysOfWeek       []Weekday `json:"daysOfWeek"`
	Required         bool      `json:"required"`
	RequiresPhoto    bool      `json:"requiresPhoto"`
	EstimatedMinutes *int      `json:"estimatedMinutes,omitempty"`
}

// ActiveOn reports whether the task's schedule includes the given weekday.
func (t Task) ActiveOn(day Weekday) bool {
	for _, d := range t.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// ChecklistItem is one day's materialized occurrence of a Task. Items are
// created only by materialization and mutated only by the completion toggle.
// The completion fields (CompletedByUserID, PhotoURL, Note, CompletedAt) are
// all unset while Completed is false and set together when it flips true.
type ChecklistItem struct {
	ID                string     `json:"id"`
	SectorID          string     `json:"sectorId"`
	Type              TaskType   `json:"type"`
	Date              time.Time  `json:"date"` // local day-start
	TaskID            string     `json:"taskId"`
	Completed         bool       `json:"completed"`
	CompletedByUserID *string    `json:"completedByUserId,omitempty"`
	PhotoURL          *string    `json:"photoUrl,omitempty"`
	Note              *string    `json:"note,omitempty"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}
