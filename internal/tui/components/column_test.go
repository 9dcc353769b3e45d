package components

import (
	"strings"
	"testing"

	"github.com/pmarcondes/tarefa/internal/board"
	"github.com/pmarcondes/tarefa/internal/config/colors"
	"github.com/pmarcondes/tarefa/internal/models"
)

func setupStyles(t *testing.T) {
	t.Helper()
	InitStyles(*colors.GetPreset("default"))
}

func TestRenderColumnShowsTitleAndCount(t *testing.T) {
	setupStyles(t)

	col := board.Column{
		ID:   1,
		Name: "Engineering",
		Kind: board.KindTasks,
		Tasks: []models.Task{
			{ID: 1, Name: "Ship release", Status: "Ongoing"},
			{ID: 2, Name: "Fix login", Status: "Late"},
		},
	}

	out := RenderColumn(col, -1, false)
	if !strings.Contains(out, "Engineering (2)") {
		t.Errorf("Column output missing title with count:\n%s", out)
	}
	if !strings.Contains(out, "Ship release") {
		t.Errorf("Column output missing task name:\n%s", out)
	}
}

func TestRenderEmptyColumn(t *testing.T) {
	setupStyles(t)

	col := board.Column{ID: 2, Name: "Design", Kind: board.KindTasks}
	out := RenderColumn(col, -1, false)

	if !strings.Contains(out, EmptyColumnMessage) {
		t.Errorf("Empty column should show %q, got:\n%s", EmptyColumnMessage, out)
	}
}

func TestRenderPeopleColumn(t *testing.T) {
	setupStyles(t)

	col := board.Column{
		ID:   3,
		Name: "Platform",
		Kind: board.KindPeople,
		People: []board.Person{
			{UserID: 10, Name: "Ann", Email: "ann@example.com", Role: "Manager", Joined: "2024-01-02"},
		},
	}

	out := RenderColumn(col, -1, false)
	if !strings.Contains(out, "ann@example.com") {
		t.Errorf("People column missing member email:\n%s", out)
	}
	if !strings.Contains(out, "Manager") {
		t.Errorf("People column missing role badge:\n%s", out)
	}
}

func TestRenderTaskCardShowsStatusBadgeAndDeadline(t *testing.T) {
	setupStyles(t)

	task := models.Task{
		ID:       4,
		Name:     "Ship release",
		Status:   models.StatusDelivered,
		Deadline: "2024-03-01T00:00:00Z",
	}

	out := RenderTaskCard(task, false)
	if !strings.Contains(out, "Delivered") {
		t.Errorf("Task card missing status badge:\n%s", out)
	}
	if !strings.Contains(out, "01/03/2024") {
		t.Errorf("Task card missing formatted deadline:\n%s", out)
	}
}

func TestRenderTaskDetail(t *testing.T) {
	setupStyles(t)

	task := models.Task{
		ID:       9,
		Name:     "Fix login",
		Status:   models.StatusLate,
		Start:    "2024-01-10T00:00:00Z",
		Deadline: "2024-02-20T00:00:00Z",
	}

	out := RenderTaskDetail(task, 60)
	for _, want := range []string{"Fix login", "#9", "Late", "10/01/2024", "20/02/2024"} {
		if !strings.Contains(out, want) {
			t.Errorf("Detail view missing %q:\n%s", want, out)
		}
	}
}

func TestRenderStatusBar(t *testing.T) {
	setupStyles(t)

	out := RenderStatusBar(100, "Ann", "q: quit", "Saved.", false)
	for _, want := range []string{"Tarefa", "Ann", "q: quit", "Saved."} {
		if !strings.Contains(out, want) {
			t.Errorf("Status bar missing %q:\n%s", want, out)
		}
	}
}

func TestTruncateLongNames(t *testing.T) {
	setupStyles(t)

	long := strings.Repeat("x", 80)
	got := truncate(long, nameMaxLength)
	if len([]rune(got)) != nameMaxLength {
		t.Errorf("truncate length = %d, want %d", len([]rune(got)), nameMaxLength)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated name should end with ellipsis, got %q", got)
	}
}
