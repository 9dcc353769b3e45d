package theme

import "github.com/pmarcondes/tarefa/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Background     string
	CardBg         string
	SelectedBg     string
	ColumnBorder   string
	CardBorder     string
	SelectedBorder string
	Title          string
	Subtle         string
	Normal         string
	BadgeBlue      string
	BadgeGreen     string
	BadgeRed       string
	BadgeYellow    string
	BadgeGray      string
	ErrorFg        string
	InfoFg         string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Accent = scheme.Accent
	Background = scheme.Background
	CardBg = scheme.CardBackground
	SelectedBg = scheme.SelectedBg
	ColumnBorder = scheme.ColumnBorder
	CardBorder = scheme.CardBorder
	SelectedBorder = scheme.SelectedBorder
	Title = scheme.Title
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	BadgeBlue = scheme.BadgeBlue
	BadgeGreen = scheme.BadgeGreen
	BadgeRed = scheme.BadgeRed
	BadgeYellow = scheme.BadgeYellow
	BadgeGray = scheme.BadgeGray
	ErrorFg = scheme.ErrorFg
	InfoFg = scheme.InfoFg
}

// BadgeColor maps a status or role string to its badge color. The
// groups mirror the web client so the terminal board reads the same:
// scheduled/plain-collaborator things are blue, delivered/manager
// green, late/admin red, ongoing yellow, anything else gray. Roles are
// free text, so unknown values fall through to gray.
func BadgeColor(value string) string {
	switch value {
	case "Programmed", "Collaborator":
		return BadgeBlue
	case "Delivered", "Manager":
		return BadgeGreen
	case "Late", "Admin", "CEO":
		return BadgeRed
	case "Ongoing":
		return BadgeYellow
	default:
		return BadgeGray
	}
}
