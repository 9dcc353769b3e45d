package colors

// Default returns the default color scheme (dark, blue accent)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#3B82F6",

		Background:     "#1C1C1C",
		CardBackground: "#262626",
		SelectedBg:     "#3A3A3A",

		ColumnBorder:   "#334155",
		CardBorder:     "#585858",
		SelectedBorder: "#3B82F6",

		Title:  "#E2E8F0",
		Subtle: "#64748B",
		Normal: "#D0D0D0",

		BadgeBlue:   "#3B82F6",
		BadgeGreen:  "#22C55E",
		BadgeRed:    "#EF4444",
		BadgeYellow: "#EAB308",
		BadgeGray:   "#94A3B8",

		ErrorFg: "#EF4444",
		InfoFg:  "#38BDF8",
	}
}
