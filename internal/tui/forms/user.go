package forms

import (
	"charm.land/huh/v2"

	"github.com/pmarcondes/tarefa/internal/models"
	"github.com/pmarcondes/tarefa/internal/tui/state"
)

// CreateUser builds the new-collaborator form. Role is free text;
// permission is one of the fixed levels.
func CreateUser(fs *state.FormState) *huh.Form {
	permissions := make([]huh.Option[string], 0, len(models.Permissions()))
	for _, p := range models.Permissions() {
		permissions = append(permissions, huh.NewOption(string(p), string(p)))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("Full name...").
			Validate(requiredText("Name")).
			Value(&fs.Name),

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

		huh.NewInput().
			Key("role").
			Title("Role").
			Placeholder("Collaborator, Manager, CEO...").
			Value(&fs.Role),

		huh.NewSelect[string]().
			Key("permission").
			Title("Permission").
			Options(permissions...).
			Value(&fs.Permission),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(formKeyMap()).
		WithShowHelp(false)
}
