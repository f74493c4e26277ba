package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/h0rv/projbook/internal/domain"
	"github.com/h0rv/projbook/internal/logic"
	"github.com/h0rv/projbook/internal/storage"
	"github.com/h0rv/projbook/internal/store"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <projectID>",
		Short: "Open a project's repository in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := domain.ParseID("Project", args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			m, err := openManager(cmd.Context(), cfg, stderrLogger(cfg), true)
			if err != nil {
				return err
			}
			defer m.Close()

			project, err := m.Store().Project(projectID)
			if err != nil {
				return err
			}
			if project.Repository.IsEmpty() {
				return logic.ErrNoRepository
			}
			url := project.Repository.URL()
			if err := browser.OpenURL(url); err != nil {
				return fmt.Errorf("could not open %s: %w", url, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Opened", url)
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var formatFlag string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the address book to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			m, err := openManager(cmd.Context(), cfg, stderrLogger(cfg), true)
			if err != nil {
				return err
			}
			defer m.Close()

			switch strings.ToLower(formatFlag) {
			case formatYAML:
				return storage.ExportYAML(cmd.OutOrStdout(), m.Store())
			case formatJSON:
				return storage.EncodeJSON(cmd.OutOrStdout(), m.Store())
			default:
				return fmt.Errorf("unknown format %q (want yaml or json)", formatFlag)
			}
		},
	}

	exportCmd.Flags().StringVarP(&formatFlag, "format", "f", formatYAML, "Output format: yaml or json.")
	return exportCmd
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace the address book with an exported one",
		Long: `Replace the stored address book with a file written by 'projbook export'.
Files ending in .json are read as JSON, everything else as YAML. The file is
fully validated before anything is overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := stderrLogger(cfg)

			s, err := readBook(args[0])
			if err != nil {
				return err
			}

			st, err := openStorage(cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Save(cmd.Context(), s); err != nil {
				return err
			}

			clients, projects, issues := s.Counts()
			logger.Info("address book restored", "from", args[0], "to", cfg.DataFile)
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d clients, %d projects and %d issues\n", clients, projects, issues)
			return nil
		},
	}
}

// readBook decodes an exported book, choosing the format by extension.
func readBook(path string) (*store.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), "."+formatJSON) {
		return storage.DecodeJSON(f)
	}
	return storage.ImportYAML(f)
}
