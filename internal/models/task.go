package models

// Task is a task record as returned by the API.
// Start and Deadline are kept in the backend's wire format (an ISO date,
// optionally with a time portion) and only interpreted for display.
type Task struct {
	ID          int    `json:"id_task"`
	Name        string `json:"name_task"`
	Description string `json:"description_task"`
	Status      Status `json:"status_task"`
	Start       string `json:"start_task"`
	Deadline    string `json:"deadline_task"`
	TeamID      int    `json:"id_team_task"`
}

// Assigned reports whether the task already belongs to a team.
// Unassigned tasks are the ones offered by the assign-task picker.
func (t Task) Assigned() bool {
	return t.TeamID != 0
}

// DeadlineDisplay returns the deadline formatted for the board card,
// or the empty string when the task has no deadline.
func (t Task) DeadlineDisplay() string {
	return FormatDateBR(t.Deadline)
}
