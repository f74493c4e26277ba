package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/h0rv/projbook/internal/auth"
	"github.com/h0rv/projbook/internal/config"
	"github.com/h0rv/projbook/internal/domain"
	"github.com/h0rv/projbook/internal/gh"
	"github.com/h0rv/projbook/internal/logic"
	"github.com/h0rv/projbook/internal/tui"
)

// newGitHubClient authenticates with the configured token, the gh CLI or
// GITHUB_TOKEN, in that order.
func newGitHubClient(cfg *config.Config) (*gh.Client, error) {
	client, err := gh.New(auth.DefaultProviders(cfg.GitHub.Token)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	return client, nil
}

func newImportCmd() *cobra.Command {
	var (
		projectFlag int
		limitFlag   int
	)

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import open GitHub issues into a project",
		Long: `Import the open issues of a project's GitHub repository as issues of that
project.

Issues whose title is already in the address book are skipped. A
"priority: high" (or medium/low) label sets the priority and the milestone
due date becomes the deadline.

Without --project a picker lists the projects that have a repository.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limitFlag < 1 {
				return fmt.Errorf("--limit must be a positive number")
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

			projectID := projectFlag
			if projectID == 0 {
				withRepo := m.Store().FilterProjects(func(p *domain.Project) bool {
					return !p.Repository.IsEmpty()
				})
				if len(withRepo) == 0 {
					return fmt.Errorf("no project has a repository; set one with 'project -e pid/<id> r/<owner>/<repo>'")
				}
				project, err := tui.PickProject("Import issues into", withRepo)
				if err != nil {
					return err
				}
				projectID = project.ID()
			}

			client, err := newGitHubClient(cfg)
			if err != nil {
				return err
			}

			result, err := m.ImportIssues(cmd.Context(), projectID, client, limitFlag)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result)
			for _, issue := range result.Added {
				fmt.Fprintf(out, "  %s  %s  %s\n", issue.UI(), issue.Priority.UI(), issue.Deadline.UI())
			}
			return nil
		},
	}

	importCmd.Flags().IntVar(&projectFlag, "project", 0, "Project ID to import into. Skips the project picker.")
	importCmd.Flags().IntVar(&limitFlag, "limit", 50, "Maximum number of issues to fetch.")
	return importCmd
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push <issueID>",
		Short: "Open a GitHub issue for an address book issue",
		Long: `Create an issue in the GitHub repository of the issue's project. The
title is copied and the priority, deadline and status go into the body.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			issueID, err := domain.ParseID("Issue", args[0])
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

			client, err := newGitHubClient(cfg)
			if err != nil {
				return err
			}

			created, err := m.PushIssue(cmd.Context(), issueID, client)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created issue #%d: %s\n", created.Number, created.URL)
			return nil
		},
	}
}

var (
	_ logic.IssueFetcher = (*gh.Client)(nil)
	_ logic.IssueCreator = (*gh.Client)(nil)
)
