package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/activitylist/activitylist/internal/app"
	"github.com/activitylist/activitylist/internal/logging"
	"github.com/activitylist/activitylist/internal/store"
)

// TUI launches the interactive interface.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to a file to avoid interfering with TUI rendering
	logPath := tuiLogPath(r.config.Database.Path)
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", logPath, err)
	}
	defer f.Close()

	logger := logging.New(f, r.config.Log.Level)
	storeLogger := logging.With(logger, "store")

	m := app.New(app.Options{
		Lists:  store.NewTasksListStore(r.ec, store.WithLogger(storeLogger)),
		Items:  store.NewTaskItemStore(r.ec, store.WithLogger(storeLogger)),
		Logger: logging.With(logger, "tui"),
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// tuiLogPath places the TUI log next to the store file, or in the working
// directory for an in-memory store.
func tuiLogPath(dbPath string) string {
	if dbPath == "" || dbPath == ":memory:" {
		return "activitylist-tui.log"
	}
	return filepath.Join(filepath.Dir(dbPath), "activitylist-tui.log")
}
