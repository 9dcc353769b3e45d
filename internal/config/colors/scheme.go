package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "light")
	Preset string `yaml:"preset"`

	// Primary accent color (active tab, selections, titles)
	Accent string `yaml:"accent"`

	// Background colors
	Background     string `yaml:"background"`
	CardBackground string `yaml:"card_background"`
	SelectedBg     string `yaml:"selected_bg"`

	// Borders
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // muted/placeholder text
	Normal string `yaml:"normal"`

	// Status badge colors, keyed by the badge groups the board uses
	BadgeBlue   string `yaml:"badge_blue"`   // Programmed, Collaborator
	BadgeGreen  string `yaml:"badge_green"`  // Delivered, Manager
	BadgeRed    string `yaml:"badge_red"`    // Late, Admin
	BadgeYellow string `yaml:"badge_yellow"` // Ongoing
	BadgeGray   string `yaml:"badge_gray"`   // everything else

	// Notification colors
	ErrorFg string `yaml:"error_fg"`
	InfoFg  string `yaml:"info_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "light":
		return Light()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base.
// If preset is specified, loads that preset first, then overrides with
// custom values.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Background == "" {
		c.Background = preset.Background
	}
	if c.CardBackground == "" {
		c.CardBackground = preset.CardBackground
	}
	if c.SelectedBg == "" {
		c.SelectedBg = preset.SelectedBg
	}
	if c.ColumnBorder == "" {
		c.ColumnBorder = preset.ColumnBorder
	}
	if c.CardBorder == "" {
		c.CardBorder = preset.CardBorder
	}
	if c.SelectedBorder == "" {
		c.SelectedBorder = preset.SelectedBorder
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.BadgeBlue == "" {
		c.BadgeBlue = preset.BadgeBlue
	}
	if c.BadgeGreen == "" {
		c.BadgeGreen = preset.BadgeGreen
	}
	if c.BadgeRed == "" {
		c.BadgeRed = preset.BadgeRed
	}
	if c.BadgeYellow == "" {
		c.BadgeYellow = preset.BadgeYellow
	}
	if c.BadgeGray == "" {
		c.BadgeGray = preset.BadgeGray
	}
	if c.ErrorFg == "" {
		c.ErrorFg = preset.ErrorFg
	}
	if c.InfoFg == "" {
		c.InfoFg = preset.InfoFg
	}
}
