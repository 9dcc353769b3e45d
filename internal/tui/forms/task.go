package forms

import (
	"charm.land/huh/v2"

	"github.com/pmarcondes/tarefa/internal/models"
	"github.com/pmarcondes/tarefa/internal/tui/state"
)

// CreateTask builds the new-task form. The start date is prefilled
// with today; both dates travel as yyyy-mm-dd strings.
func CreateTask(fs *state.FormState) *huh.Form {
	if fs.Start == "" {
		fs.Start = models.Today()
	}
	if fs.Status == "" {
		fs.Status = string(models.StatusOngoing)
	}

	statuses := make([]huh.Option[string], 0, len(models.Statuses()))
	for _, s := range models.Statuses() {
		statuses = append(statuses, huh.NewOption(string(s), string(s)))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Title").
			Placeholder("Enter task title...").
			Validate(requiredText("Title")).
			Value(&fs.Name),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Enter task description...").
			CharLimit(5000).
			Lines(4).
			Value(&fs.Description),

		huh.NewInput().
			Key("start").
			Title("Start (yyyy-mm-dd)").
			Value(&fs.Start),

		huh.NewInput().
			Key("deadline").
			Title("Deadline (yyyy-mm-dd)").
			Value(&fs.Deadline),

		huh.NewSelect[string]().
			Key("status").
			Title("Status").
			Options(statuses...).
			Value(&fs.Status),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(formKeyMap()).
		WithShowHelp(false)
}
