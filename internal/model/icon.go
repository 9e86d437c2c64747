package model

// Icon is the enumerated symbol a sector (or screen) renders with. The set
// mirrors the glyphs the UI ships; anything outside it falls back to
// IconDefault rather than failing.
type Icon string

const (
	IconRestaurant Icon = "restaurant"
	IconPizza      Icon = "local_pizza"
	IconTable      Icon = "table_restaurant"
	IconCoffee     Icon = "coffee"
	IconBar        Icon = "local_bar"
	IconCake       Icon = "cake"
	IconSettings   Icon = "settings"
	IconDashboard  Icon = "dashboard"
	IconUsers      Icon = "users"
	IconChecklist  Icon = "checklist"
	IconReports    Icon = "reports"
	IconCamera     Icon = "camera"
	IconClock      Icon = "clock"
	IconAlert      Icon = "alert"
	IconTrash      Icon = "trash"

	IconDefault = IconChecklist
)

// Glyph resolves the icon to its renderable glyph name. The switch is
// exhaustive over the known set; unknown values resolve to the default so a
// stale persisted icon name never breaks rendering.
func (i Icon) Glyph() string {
	switch i {
	case IconRestaurant:
		return "utensils"
	case IconPizza:
		return "pizza"
	case IconTable:
		return "table-properties"
	case IconCoffee:
		return "coffee"
	case IconBar:
		return "wine"
	case IconCake:
		return "cake"
	case IconSettings:
		return "settings"
	case IconDashboard:
		return "layout-dashboard"
	case IconUsers:
		return "users"
	case IconChecklist:
		return "check-square"
	case IconReports:
		return "bar-chart-3"
	case IconCamera:
		return "camera"
	case IconClock:
		return "clock"
	case IconAlert:
		return "alert-circle"
	case IconTrash:
		return "trash-2"
	default:
		return "check-square"
	}
}

// Valid reports whether the icon names a known glyph.
func (i Icon) Valid() bool {
	switch i {
	case IconRestaurant, IconPizza, IconTable, IconCoffee, IconBar, IconCake,
		IconSettings, IconDashboard, IconUsers, IconChecklist, IconReports,
		IconCamera, IconClock, IconAlert, IconTrash:
		return true
	}
	return false
}
