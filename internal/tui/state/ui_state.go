package state

import "github.com/pmarcondes/tarefa/internal/models"

// Mode is the top-level input mode of the TUI.
type Mode int

const (
	ModeLogin Mode = iota
	ModeBoard
	ModeForm
	ModeDetail
)

// UIState is the presentation side of the model: terminal size,
// which card is selected, the open detail overlay and the transient
// notification line.
type UIState struct {
	mode   Mode
	width  int
	height int

	selectedColumn int
	selectedCard   int

	detailTask models.Task

	notification string
	notifIsError bool
}

func NewUIState() *UIState {
	return &UIState{mode: ModeLogin}
}

func (s *UIState) Mode() Mode        { return s.mode }
func (s *UIState) SetMode(m Mode)    { s.mode = m }
func (s *UIState) Width() int        { return s.width }
func (s *UIState) Height() int       { return s.height }
func (s *UIState) SetSize(w, h int)  { s.width, s.height = w, h }
func (s *UIState) SelectedColumn() int { return s.selectedColumn }
func (s *UIState) SelectedCard() int   { return s.selectedCard }

func (s *UIState) DetailTask() models.Task     { return s.detailTask }
func (s *UIState) SetDetailTask(t models.Task) { s.detailTask = t }

func (s *UIState) Notification() (string, bool) { return s.notification, s.notifIsError }

func (s *UIState) SetError(msg string) {
	s.notification = msg
	s.notifIsError = true
}

func (s *UIState) SetInfo(msg string) {
	s.notification = msg
	s.notifIsError = false
}

func (s *UIState) ClearNotification() {
	s.notification = ""
	s.notifIsError = false
}

// MoveColumn shifts the column selection by delta, clamped to
// [0, columnCount), and resets the card selection.
func (s *UIState) MoveColumn(delta, columnCount int) {
	if columnCount == 0 {
		s.selectedColumn, s.selectedCard = 0, 0
		return
	}
	s.selectedColumn = clamp(s.selectedColumn+delta, 0, columnCount-1)
	s.selectedCard = 0
}

// MoveCard shifts the card selection by delta, clamped to
// [0, cardCount).
func (s *UIState) MoveCard(delta, cardCount int) {
	if cardCount == 0 {
		s.selectedCard = 0
		return
	}
	s.selectedCard = clamp(s.selectedCard+delta, 0, cardCount-1)
}

// ClampSelection re-fits the selection after the content changed, so
// a shrinking board never leaves the cursor out of range.
func (s *UIState) ClampSelection(columnCount, cardCount int) {
	if columnCount == 0 {
		s.selectedColumn, s.selectedCard = 0, 0
		return
	}
	s.selectedColumn = clamp(s.selectedColumn, 0, columnCount-1)
	if cardCount == 0 {
		s.selectedCard = 0
		return
	}
	s.selectedCard = clamp(s.selectedCard, 0, cardCount-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
