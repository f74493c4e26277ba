package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/h0rv/projbook/internal/config"
	"github.com/h0rv/projbook/internal/logging"
	"github.com/h0rv/projbook/internal/logic"
	"github.com/h0rv/projbook/internal/storage"
	"github.com/h0rv/projbook/internal/tui"
)

var (
	// CLI flags
	dataFileFlag string
	storageFlag  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "projbook",
		Short: "Terminal address book for clients, projects and issues",
		Long: `projbook keeps track of your clients, the projects they commission and
the issues of every project.

Run without arguments for the interactive shell, or pass a single command to
'projbook exec'. Type 'help' in the shell for the command reference.

Configuration:
  PROJBOOK_DATA_FILE   where the address book is stored
  PROJBOOK_STORAGE     json (default) or sqlite
  PROJBOOK_LOG_LEVEL   debug, info, warn (default) or error
  GITHUB_TOKEN         token for import and push (or run 'gh auth login')

The same keys may be set in $XDG_CONFIG_HOME/projbook/config.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runShell,
	}

	rootCmd.PersistentFlags().StringVar(&dataFileFlag, "data-file", "", "Address book file. Overrides the configured data file.")
	rootCmd.PersistentFlags().StringVar(&storageFlag, "storage", "", "Storage backend (json or sqlite). Overrides the configured backend.")

	rootCmd.AddCommand(
		newExecCmd(),
		newImportCmd(),
		newPushCmd(),
		newOpenCmd(),
		newExportCmd(),
		newRestoreCmd(),
	)
	return rootCmd
}

// loadConfig loads the configuration and applies the persistent flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if storageFlag != "" {
		if err := cfg.SetStorage(storageFlag); err != nil {
			return nil, err
		}
	}
	if dataFileFlag != "" {
		cfg.DataFile = dataFileFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// stderrLogger routes logs of one-shot commands to stderr.
func stderrLogger(cfg *config.Config) *slog.Logger {
	logging.SetupLogger(os.Stderr, logging.LogLevel(cfg.LogLevel))
	return logging.GetLogger()
}

// openStorage returns the configured backend.
func openStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.DataFile), 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		return storage.OpenSQLite(cfg.DataFile)
	default:
		return storage.NewJSONStorage(cfg.DataFile), nil
	}
}

// openManager loads the address book. strict refuses a book that could not
// be loaded instead of starting from an empty one, so one-shot commands
// never overwrite a damaged file.
func openManager(ctx context.Context, cfg *config.Config, logger *slog.Logger, strict bool) (*logic.Manager, error) {
	st, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}
	m := logic.New(ctx, st, logger)
	if strict && m.LoadError() != nil {
		m.Close()
		return nil, fmt.Errorf("could not load %s: %w", cfg.DataFile, m.LoadError())
	}
	return m, nil
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the shell, so logs go to a file.
	logFile, err := logging.OpenLogFile(cfg.DataDir())
	if err != nil {
		return err
	}
	defer logFile.Close()
	logging.SetupLogger(logFile, logging.LogLevel(cfg.LogLevel))
	logging.Info("starting shell", "data_file", cfg.DataFile, "storage", cfg.Storage)

	m, err := openManager(cmd.Context(), cfg, logging.GetLogger(), false)
	if err != nil {
		return err
	}
	defer m.Close()

	app := tui.NewAppModel(cmd.Context(), m).WithError(m.LoadError())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
