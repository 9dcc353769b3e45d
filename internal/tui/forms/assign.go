package forms

import (
	"fmt"

	"charm.land/huh/v2"

	"github.com/pmarcondes/tarefa/internal/board"
	"github.com/pmarcondes/tarefa/internal/models"
	"github.com/pmarcondes/tarefa/internal/tui/state"
)

// AssignUser builds the form that adds a teamless collaborator to the
// team named in fs.TargetTeamID. members is the full user join; only
// users without a team are offered.
func AssignUser(fs *state.FormState, members []board.Member) *huh.Form {
	options := make([]huh.Option[int], 0, len(members))
	for _, m := range members {
		if m.User.HasTeam() {
			continue
		}
		label := fmt.Sprintf("%s <%s>", m.User.Name, m.User.Email)
		options = append(options, huh.NewOption(label, m.User.ID))
	}

	fields := []huh.Field{
		huh.NewSelect[int]().
			Key("user").
			Title("Add collaborator").
			Options(options...).
			Value(&fs.SelectedUserID),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(formKeyMap()).
		WithShowHelp(false)
}

// AssignTask builds the form that attaches an unassigned task to the
// team named in fs.TargetTeamID.
func AssignTask(fs *state.FormState, tasks []models.Task) *huh.Form {
	options := make([]huh.Option[int], 0, len(tasks))
	for _, t := range tasks {
		if t.Assigned() {
			continue
		}
		options = append(options, huh.NewOption(fmt.Sprintf("#%d %s", t.ID, t.Name), t.ID))
	}

	fields := []huh.Field{
		huh.NewSelect[int]().
			Key("task").
			Title("Assign task").
			Options(options...).
			Value(&fs.SelectedTaskID),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(formKeyMap()).
		WithShowHelp(false)
}
