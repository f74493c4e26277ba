package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/h0rv/projbook/internal/command"
)

func newExecCmd() *cobra.Command {
	execCmd := &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run a single address book command",
		Long: `Run one command exactly as it would be typed into the shell and print
its result.

Example:
  projbook exec project -a n/Website r/octo/site d/2024-12-01
  projbook exec issue -f pr/high`,
		Args: cobra.MinimumNArgs(1),
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

			result, err := m.Execute(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
	// Everything after the first word belongs to the address book command,
	// including its -a/-e/... flag.
	execCmd.Flags().SetInterspersed(false)
	return execCmd
}

// printResult writes the message followed by the entities of the result.
func printResult(w io.Writer, r command.Result) {
	fmt.Fprintln(w, r.Message)
	if r.Help {
		return
	}
	for i, c := range r.Clients {
		fmt.Fprintf(w, "%d. %s  %s  %s\n", i+1, c.UI(), c.Phone.UI(), c.Email.UI())
	}
	for i, p := range r.Projects {
		fmt.Fprintf(w, "%d. %s  %s  %s  %s  %s\n", i+1, p.UI(), p.Repository.UI(), p.Deadline.UI(), p.ClientUI(), p.IssueSummary())
	}
	for i, is := range r.Issues {
		fmt.Fprintf(w, "%d. %s  %s  %s  %s  Project: %s\n", i+1, is.UI(), is.Priority.UI(), is.Status.UI(), is.Deadline.UI(), is.Project().UI())
	}
}
