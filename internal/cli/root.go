package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/faizmokh/jurnal/internal/config"
	"github.com/faizmokh/jurnal/internal/files"
	"github.com/faizmokh/jurnal/internal/journal"
	"github.com/faizmokh/jurnal/internal/logging"
	"github.com/faizmokh/jurnal/internal/ui"
	"github.com/faizmokh/jurnal/internal/version"
)

// logAnnotation marks commands that write to the operator log. The value
// "persist" limits that to sessions with mirroring enabled, since mirror
// failures are the only thing such a command logs.
const logAnnotation = "jurnal/log"

// Session carries the collaborators every command needs to build a journal.
// Log stays a no-op logger until OpenLog runs.
type Session struct {
	Manager *files.Manager
	Config  config.Config
	Log     zerolog.Logger

	logFile *os.File
}

// NewStore returns an empty journal, mirrored to disk when persistence is on.
func (s *Session) NewStore() *journal.Store {
	opts := []journal.StoreOption{journal.WithLogger(s.Log)}
	if s.Config.Persist {
		opts = append(opts, journal.WithMirror(journal.NewFileMirror(s.Manager)))
	}
	return journal.NewStore(opts...)
}

// OpenLog points Log at JURNAL_LOG_FILE or <home>/jurnal.log, falling back
// to stderr when the file cannot be opened. Calling it again is a no-op.
func (s *Session) OpenLog() error {
	if s.logFile != nil {
		return nil
	}
	logPath := s.Config.LogFile
	if logPath == "" {
		logPath = s.Manager.LogPath()
	}

	var out io.Writer = os.Stderr
	if file, err := s.Manager.OpenLog(logPath); err == nil {
		s.logFile = file
		out = file
	} else {
		fmt.Fprintf(os.Stderr, "warning: logging to stderr: %v\n", err)
	}

	log, err := logging.New(out, s.Config.LogLevel)
	if err != nil {
		return err
	}
	s.Log = log
	return nil
}

// Close releases the log file, if one was opened.
func (s *Session) Close() error {
	if s.logFile == nil {
		return nil
	}
	err := s.logFile.Close()
	s.logFile = nil
	return err
}

func (s *Session) openLogFor(cmd *cobra.Command) error {
	switch cmd.Annotations[logAnnotation] {
	case "always":
		return s.OpenLog()
	case "persist":
		if s.Config.Persist {
			return s.OpenLog()
		}
	}
	return nil
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, session *Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "jurnal",
		Short:       "Record literature and math lessons in an academic journal.",
		Version:     version.Info(),
		Args:        cobra.NoArgs,
		Annotations: map[string]string{logAnnotation: "always"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return session.openLogFor(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(session.NewStore(), session.Log)
			if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newAddCommand(session),
		newCheckCommand(),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand loads configuration and runs the root command. The operator
// log is only created by commands that write to it.
func ExecuteCommand(ctx context.Context) error {
	cfg, err := config.Load(config.DefaultDotenv)
	if err != nil {
		return err
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}

	session := &Session{
		Manager: manager,
		Config:  cfg,
		Log:     zerolog.Nop(),
	}
	defer session.Close()
	return NewRootCommand(ctx, session).ExecuteContext(ctx)
}

// Main is a helper used by cmd/jurnal/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
