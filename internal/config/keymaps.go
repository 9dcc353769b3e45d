package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Filters
	NextFilter string `yaml:"next_filter"`
	PrevFilter string `yaml:"prev_filter"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`
	ViewTask   string `yaml:"view_task"`

	// Mutations (shown only when the session user's permission allows)
	CreateUser string `yaml:"create_user"`
	CreateTeam string `yaml:"create_team"`
	CreateTask string `yaml:"create_task"`
	AssignUser string `yaml:"assign_user"`
	AssignTask string `yaml:"assign_task"`

	// Other
	Refresh string `yaml:"refresh"`
	Logout  string `yaml:"logout"`
	Quit    string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Filters
		NextFilter: "tab",
		PrevFilter: "shift+tab",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",
		ViewTask:   " ",

		// Mutations
		CreateUser: "U",
		CreateTeam: "T",
		CreateTask: "a",
		AssignUser: "u",
		AssignTask: "t",

		// Other
		Refresh: "r",
		Logout:  "ctrl+l",
		Quit:    "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.NextFilter == "" {
		k.NextFilter = defaults.NextFilter
	}
	if k.PrevFilter == "" {
		k.PrevFilter = defaults.PrevFilter
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.ViewTask == "" {
		k.ViewTask = defaults.ViewTask
	}
	if k.CreateUser == "" {
		k.CreateUser = defaults.CreateUser
	}
	if k.CreateTeam == "" {
		k.CreateTeam = defaults.CreateTeam
	}
	if k.CreateTask == "" {
		k.CreateTask = defaults.CreateTask
	}
	if k.AssignUser == "" {
		k.AssignUser = defaults.AssignUser
	}
	if k.AssignTask == "" {
		k.AssignTask = defaults.AssignTask
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.Logout == "" {
		k.Logout = defaults.Logout
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
