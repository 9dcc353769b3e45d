// Package session holds the authenticated user for the lifetime of a
// login. The session is created by a successful login, passed
// explicitly to whoever needs the token or the permission gate, and
// destroyed on logout.
//
// The on-disk copy only exists so a restart can skip the login screen.
// It is a convenience, not a security boundary: the backend must treat
// the token as the sole proof of identity.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pmarcondes/tarefa/internal/models"
)

// Session is the live login state: the opaque bearer token and the
// user it belongs to.
type Session struct {
	Token string      `yaml:"token"`
	User  models.User `yaml:"user"`
}

// New creates a session from a login response.
func New(token string, user models.User) *Session {
	return &Session{Token: token, User: user}
}

// Permission returns the session user's permission level, the input to
// every display gate.
func (s *Session) Permission() models.Permission {
	return s.User.Permission
}

// Load restores a previously saved session. Returns (nil, nil) when no
// session is stored, which callers treat as "show the login screen".
func Load() (*Session, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	if s.Token == "" {
		// A session without a token cannot authenticate anything;
		// treat it like no session at all.
		return nil, nil
	}
	return &s, nil
}

// Save persists the session for the next start. The file is written
// owner-only since it contains the token.
func (s *Session) Save() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Clear destroys the stored session. Clearing an absent session is not
// an error; logout must always succeed.
func Clear() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// sessionPath returns the session file location, next to the config.
func sessionPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tarefa", "session.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tarefa", "session.yaml"), nil
}
