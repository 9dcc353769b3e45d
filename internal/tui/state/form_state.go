package state

import "charm.land/huh/v2"

// FormKind identifies which modal form is open.
type FormKind int

const (
	FormNone FormKind = iota
	FormLogin
	FormCreateUser
	FormCreateTeam
	FormCreateTask
	FormAssignUser
	FormAssignTask
)

// FormState holds the active huh form and the values its fields are
// bound to. The fields are exported because huh binds to pointers
// into this struct.
type FormState struct {
	Kind FormKind
	Form *huh.Form

	// Shared text inputs
	Name        string
	Email       string
	Password    string
	Description string

	// Selects
	Role       string
	Permission string
	Status     string

	// Task dates, kept as yyyy-mm-dd strings for the wire
	Start    string
	Deadline string

	// Assignment targets
	SelectedUserID int
	SelectedTaskID int
	TargetTeamID   int
}

func NewFormState() *FormState {
	return &FormState{}
}

// Reset clears the form and every staged value.
func (s *FormState) Reset() {
	*s = FormState{}
}
