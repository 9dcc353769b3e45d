package session

import (
	"testing"

	"github.com/pmarcondes/tarefa/internal/models"
)

// useTempConfigHome points XDG_CONFIG_HOME at a temp dir so tests never
// touch the real session file.
func useTempConfigHome(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempConfigHome(t)

	s := New("tok-123", models.User{
		ID:         10,
		Name:       "Ann",
		Email:      "a@x.com",
		Permission: models.PermissionAdmin,
		TeamID:     1,
	})
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load returned nil session after Save")
	}
	if loaded.Token != "tok-123" {
		t.Errorf("Token = %q, want %q", loaded.Token, "tok-123")
	}
	if loaded.User.ID != 10 || loaded.User.Email != "a@x.com" {
		t.Errorf("User = %+v, want the saved user", loaded.User)
	}
	if !loaded.Permission().CanCreate() {
		t.Error("Permission().CanCreate() = false for saved admin")
	}
}

func TestLoadWithoutSessionReturnsNil(t *testing.T) {
	useTempConfigHome(t)

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s != nil {
		t.Errorf("Load = %+v, want nil when nothing is stored", s)
	}
}

func TestClearDestroysSession(t *testing.T) {
	useTempConfigHome(t)

	s := New("tok", models.User{ID: 1})
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load after Clear failed: %v", err)
	}
	if loaded != nil {
		t.Errorf("Load after Clear = %+v, want nil", loaded)
	}

	// Clearing again must stay silent.
	if err := Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
}
