package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/pmarcondes/tarefa/internal/api"
	"github.com/pmarcondes/tarefa/internal/config"
	"github.com/pmarcondes/tarefa/internal/logging"
	"github.com/pmarcondes/tarefa/internal/session"
	"github.com/pmarcondes/tarefa/internal/tui"
	"github.com/pmarcondes/tarefa/internal/tui/components"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to a file, the terminal belongs to the board
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	components.InitStyles(cfg.ColorScheme)

	client := api.NewClient(cfg.APIURL, cfg.Timeout())

	// A corrupt session file is not fatal, it just means signing in again
	sess, err := session.Load()
	if err != nil {
		slog.Warn("could not restore session", "error", err)
	}

	model := tui.NewModel(cfg, client, sess)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
