package colors

// Light returns a light scheme close to the web client's slate palette
func Light() *ColorScheme {
	return &ColorScheme{
		Preset: "light",

		Accent: "#3B82F6",

		Background:     "#F1F5F9",
		CardBackground: "#F8FAFC",
		SelectedBg:     "#E2E8F0",

		ColumnBorder:   "#CBD5E1",
		CardBorder:     "#E2E8F0",
		SelectedBorder: "#3B82F6",

		Title:  "#334155",
		Subtle: "#94A3B8",
		Normal: "#1E293B",

		BadgeBlue:   "#3B82F6",
		BadgeGreen:  "#22C55E",
		BadgeRed:    "#EF4444",
		BadgeYellow: "#EAB308",
		BadgeGray:   "#94A3B8",

		ErrorFg: "#B91C1C",
		InfoFg:  "#0369A1",
	}
}
