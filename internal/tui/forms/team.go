package forms

import (
	"charm.land/huh/v2"

	"github.com/pmarcondes/tarefa/internal/tui/state"
)

// CreateTeam builds the new-team form.
func CreateTeam(fs *state.FormState) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Team Name").
			Placeholder("Enter team name...").
			Validate(requiredText("Team name")).
			Value(&fs.Name),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(formKeyMap()).
		WithShowHelp(false)
}
