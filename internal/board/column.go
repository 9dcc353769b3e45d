// Package board turns raw API entities into the column layout the UI
// renders. It has two halves: the aggregator joins teams/tasks/users
// fetched from separate endpoints, and the projector reshapes the
// joined data for the selected filter.
package board

import "github.com/pmarcondes/tarefa/internal/models"

// Placeholder team names attached by the user join. They guarantee a
// member's TeamName is never empty.
const (
	// NoTeamName labels users that are not assigned to any team.
	NoTeamName = "No team"

	// UnknownTeamName labels users whose team reference failed to
	// resolve. The user is still shown rather than dropped.
	UnknownTeamName = "Unknown Team"
)

// Kind discriminates what a column holds. The collaborators filter
// shows people through the same column layout as tasks; keeping the
// variants separate avoids dressing users up as fake tasks.
type Kind int

const (
	// KindTasks marks a column whose payload is Tasks.
	KindTasks Kind = iota

	// KindPeople marks a column whose payload is People.
	KindPeople
)

// Column is one vertical list on the board: a team with its tasks, or
// a team with its members. Order of Tasks/People follows API order.
type Column struct {
	ID     int
	Name   string
	Kind   Kind
	Tasks  []models.Task
	People []Person
}

// CardCount reports how many cards the column holds, regardless of
// kind.
func (c Column) CardCount() int {
	if c.Kind == KindPeople {
		return len(c.People)
	}
	return len(c.Tasks)
}

// Person is the card shown by the collaborators view. Joined is the
// date portion of the account creation timestamp and takes the place
// a task card gives to the deadline; Role takes the place of status.
type Person struct {
	UserID int
	Name   string
	Email  string
	Role   string
	Joined string
}

// Member is a user with the team name resolved by the aggregator.
// TeamName is always non-empty after the join.
type Member struct {
	User     models.User
	TeamName string
}

// personFromUser converts a joined user into its collaborators card.
func personFromUser(u models.User) Person {
	return Person{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Joined: u.JoinedDate(),
	}
}
