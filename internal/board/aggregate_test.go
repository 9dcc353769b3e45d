package board

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pmarcondes/tarefa/internal/api"
	"github.com/pmarcondes/tarefa/internal/models"
)

// fakeTaskFetcher serves canned per-team task lists, with optional
// errors and an optional per-call delay to shake response ordering.
type fakeTaskFetcher struct {
	tasks  map[int][]models.Task
	errs   map[int]error
	delays map[int]time.Duration
}

func (f *fakeTaskFetcher) TeamTasks(ctx context.Context, teamID int) ([]models.Task, error) {
	if d, ok := f.delays[teamID]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err, ok := f.errs[teamID]; ok {
		return nil, err
	}
	return f.tasks[teamID], nil
}

// fakeTeamFetcher resolves canned teams by id.
type fakeTeamFetcher struct {
	teams map[int]models.Team
	errs  map[int]error
}

func (f *fakeTeamFetcher) Team(ctx context.Context, id int) (models.Team, error) {
	if err, ok := f.errs[id]; ok {
		return models.Team{}, err
	}
	if team, ok := f.teams[id]; ok {
		return team, nil
	}
	return models.Team{}, api.ErrNotFound
}

func TestJoinTeamsWithTasksKeepsEmptyTeams(t *testing.T) {
	teams := []models.Team{
		{ID: 1, Name: "Eng"},
		{ID: 2, Name: "Design"},
	}
	fetcher := &fakeTaskFetcher{
		tasks: map[int][]models.Task{
			1: {{ID: 10, Name: "Ship", TeamID: 1}},
		},
		errs: map[int]error{
			2: api.ErrNotFound, // backend answers 404 when a team has no tasks
		},
	}

	columns, err := JoinTeamsWithTasks(context.Background(), teams, fetcher)
	if err != nil {
		t.Fatalf("JoinTeamsWithTasks failed: %v", err)
	}

	if len(columns) != 2 {
		t.Fatalf("got %d columns, want 2", len(columns))
	}
	if columns[1].ID != 2 || columns[1].Name != "Design" {
		t.Errorf("columns[1] = %+v, want the Design team", columns[1])
	}
	if len(columns[1].Tasks) != 0 {
		t.Errorf("empty team has %d tasks, want 0", len(columns[1].Tasks))
	}
	if len(columns[0].Tasks) != 1 || columns[0].Tasks[0].Name != "Ship" {
		t.Errorf("columns[0].Tasks = %+v, want the Ship task", columns[0].Tasks)
	}
}

func TestJoinTeamsWithTasksPropagatesRealErrors(t *testing.T) {
	teams := []models.Team{{ID: 1, Name: "Eng"}, {ID: 2, Name: "Design"}}
	boom := errors.New("backend down")
	fetcher := &fakeTaskFetcher{errs: map[int]error{2: boom}}

	_, err := JoinTeamsWithTasks(context.Background(), teams, fetcher)
	if !errors.Is(err, boom) {
		t.Errorf("JoinTeamsWithTasks error = %v, want wrapped %v", err, boom)
	}
}

func TestJoinTeamsWithTasksPreservesOrderUnderConcurrency(t *testing.T) {
	const teamCount = 8
	teams := make([]models.Team, teamCount)
	fetcher := &fakeTaskFetcher{
		tasks:  map[int][]models.Task{},
		delays: map[int]time.Duration{},
	}
	for i := range teams {
		id := i + 1
		teams[i] = models.Team{ID: id, Name: fmt.Sprintf("Team %d", id)}
		fetcher.tasks[id] = []models.Task{{ID: id * 100, TeamID: id}}
		// Earlier teams answer later, so completion order is reversed.
		fetcher.delays[id] = time.Duration(teamCount-i) * 5 * time.Millisecond
	}

	columns, err := JoinTeamsWithTasks(context.Background(), teams, fetcher)
	if err != nil {
		t.Fatalf("JoinTeamsWithTasks failed: %v", err)
	}

	for i, col := range columns {
		if col.ID != teams[i].ID {
			t.Fatalf("columns[%d].ID = %d, want %d (input order must win)", i, col.ID, teams[i].ID)
		}
	}
}

func TestJoinUsersWithTeams(t *testing.T) {
	users := []models.User{
		{ID: 1, Name: "Ann", TeamID: 5},
		{ID: 2, Name: "Bob"}, // no team, must not trigger a lookup
		{ID: 3, Name: "Cid", TeamID: 9},
	}
	fetcher := &fakeTeamFetcher{
		teams: map[int]models.Team{5: {ID: 5, Name: "Ops"}},
		errs:  map[int]error{9: errors.New("backend down")},
	}

	members := JoinUsersWithTeams(context.Background(), users, fetcher)

	if len(members) != 3 {
		t.Fatalf("got %d members, want 3", len(members))
	}

	tests := []struct {
		idx      int
		wantName string
		wantTeam string
	}{
		{0, "Ann", "Ops"},
		{1, "Bob", NoTeamName},
		{2, "Cid", UnknownTeamName},
	}
	for _, tt := range tests {
		got := members[tt.idx]
		if got.User.Name != tt.wantName {
			t.Errorf("members[%d].User.Name = %q, want %q (order must be preserved)", tt.idx, got.User.Name, tt.wantName)
		}
		if got.TeamName != tt.wantTeam {
			t.Errorf("members[%d].TeamName = %q, want %q", tt.idx, got.TeamName, tt.wantTeam)
		}
	}
}

func TestJoinUsersWithTeamsNeverYieldsEmptyTeamName(t *testing.T) {
	users := []models.User{
		{ID: 1, TeamID: 7},
		{ID: 2},
	}
	fetcher := &fakeTeamFetcher{} // every lookup fails with not found

	for _, member := range JoinUsersWithTeams(context.Background(), users, fetcher) {
		if member.TeamName == "" {
			t.Errorf("member %d has empty TeamName", member.User.ID)
		}
	}
}
