// Package state holds the state of the TUI, split into data state
// (what the board shows) and UI state (how it is shown).
package state

import (
	"github.com/pmarcondes/tarefa/internal/board"
	"github.com/pmarcondes/tarefa/internal/models"
)

// AppState is the data side of the model: the signed-in user, the
// loaded datasets and the projection currently on screen.
//
// Two generation counters guard async results. dataGen increments on
// every full reload, so responses from an abandoned reload are
// dropped. viewGen increments on every filter change, so a projection
// computed for a previous filter never overwrites the current one.
type AppState struct {
	currentUser models.User
	filter      board.Filter

	teams    []board.Column
	users    []board.Member
	allTasks []models.Task
	content  []board.Column

	dataGen int
	viewGen int
	loading bool
}

func NewAppState() *AppState {
	return &AppState{filter: board.FilterAllTasks}
}

func (s *AppState) CurrentUser() models.User        { return s.currentUser }
func (s *AppState) SetCurrentUser(u models.User)    { s.currentUser = u }
func (s *AppState) Filter() board.Filter            { return s.filter }
func (s *AppState) Teams() []board.Column           { return s.teams }
func (s *AppState) SetTeams(cols []board.Column)    { s.teams = cols }
func (s *AppState) Users() []board.Member           { return s.users }
func (s *AppState) SetUsers(members []board.Member) { s.users = members }
func (s *AppState) AllTasks() []models.Task         { return s.allTasks }
func (s *AppState) SetAllTasks(tasks []models.Task) { s.allTasks = tasks }
func (s *AppState) Content() []board.Column         { return s.content }
func (s *AppState) SetContent(cols []board.Column)  { s.content = cols }
func (s *AppState) Loading() bool                   { return s.loading }
func (s *AppState) SetLoading(loading bool)         { s.loading = loading }

// SetFilter switches the active filter and returns the new view
// generation. Projections carrying an older generation are stale.
func (s *AppState) SetFilter(f board.Filter) int {
	s.filter = f
	s.viewGen++
	return s.viewGen
}

// NextFilter cycles forward through the filters.
func (s *AppState) NextFilter() int {
	return s.SetFilter((s.filter + 1) % board.Filter(len(board.Filters())))
}

// PrevFilter cycles backward through the filters.
func (s *AppState) PrevFilter() int {
	n := board.Filter(len(board.Filters()))
	return s.SetFilter((s.filter - 1 + n) % n)
}

// BumpDataGen starts a new load cycle and returns its generation.
func (s *AppState) BumpDataGen() int {
	s.dataGen++
	return s.dataGen
}

func (s *AppState) DataGen() int { return s.dataGen }
func (s *AppState) ViewGen() int { return s.viewGen }
