package forms

import (
	"charm.land/huh/v2"

	"github.com/pmarcondes/tarefa/internal/tui/state"
)

// Login builds the sign-in form.
func Login(fs *state.FormState) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.com").
			Validate(requiredText("Email")).
			Value(&fs.Email),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(requiredText("Password")).
			Value(&fs.Password),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(formKeyMap()).
		WithShowHelp(false)
}
