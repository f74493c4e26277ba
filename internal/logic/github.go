package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/h0rv/projbook/internal/domain"
	"github.com/h0rv/projbook/internal/gh"
)

// ErrNoRepository is returned when a GitHub operation targets a project
// without a repository.
var ErrNoRepository = errors.New("this project has no repository set")

// IssueFetcher lists the open issues of a GitHub repository.
type IssueFetcher interface {
	RepositoryIssues(ctx context.Context, owner, repo string, limit int) ([]gh.Issue, error)
}

// IssueCreator opens issues in a GitHub repository.
type IssueCreator interface {
	CreateIssue(ctx context.Context, owner, repo, title, body string) (gh.CreatedIssue, error)
}

// ImportResult summarises an import.
type ImportResult struct {
	Added   []*domain.Issue
	Skipped int
}

func (r ImportResult) String() string {
	return fmt.Sprintf("Imported %d issues (%d skipped)", len(r.Added), r.Skipped)
}

// ImportIssues adds the open issues of a project's repository to the book.
// Issues whose title is already in the book or is not a valid title are
// skipped. Priority comes from a "priority: <level>" label and the deadline
// from the milestone due date.
func (m *Manager) ImportIssues(ctx context.Context, projectID int, fetcher IssueFetcher, limit int) (ImportResult, error) {
	project, err := m.store.Project(projectID)
	if err != nil {
		return ImportResult{}, err
	}
	if project.Repository.IsEmpty() {
		return ImportResult{}, ErrNoRepository
	}

	owner, repo := project.Repository.Split()
	remote, err := fetcher.RepositoryIssues(ctx, owner, repo, limit)
	if err != nil {
		return ImportResult{}, fmt.Errorf("fetching issues of %s: %w", project.Repository, err)
	}

	var result ImportResult
	for _, ri := range remote {
		title, err := domain.ParseTitle(ri.Title)
		if err != nil || m.store.IssueTitleTaken(title, 0) {
			result.Skipped++
			continue
		}
		issue := domain.NewIssue(m.store.NextIssueID(), title, remoteDeadline(ri), remotePriority(ri.Labels), domain.Incomplete, project)
		if err := m.store.AddIssue(issue); err != nil {
			result.Skipped++
			continue
		}
		result.Added = append(result.Added, issue)
	}

	m.logger.Info("imported github issues",
		"project", project.ID(), "repository", project.Repository.String(),
		"added", len(result.Added), "skipped", result.Skipped)

	if len(result.Added) > 0 {
		if err := m.Save(ctx); err != nil {
			return result, err
		}
	}
	return result, nil
}

// PushIssue opens a GitHub issue in the repository of the issue's project.
func (m *Manager) PushIssue(ctx context.Context, issueID int, creator IssueCreator) (gh.CreatedIssue, error) {
	issue, err := m.store.Issue(issueID)
	if err != nil {
		return gh.CreatedIssue{}, err
	}
	project := issue.Project()
	if project.Repository.IsEmpty() {
		return gh.CreatedIssue{}, ErrNoRepository
	}

	owner, repo := project.Repository.Split()
	body := fmt.Sprintf("%s\n%s\n%s", issue.Priority.UI(), issue.Deadline.UI(), issue.Status.UI())
	created, err := creator.CreateIssue(ctx, owner, repo, issue.Title.String(), body)
	if err != nil {
		return gh.CreatedIssue{}, fmt.Errorf("creating issue in %s: %w", project.Repository, err)
	}
	m.logger.Info("pushed issue to github", "issue", issue.ID(), "number", created.Number)
	return created, nil
}

// remotePriority reads labels such as "priority: high" or "priority/2".
func remotePriority(labels []string) domain.Priority {
	for _, label := range labels {
		rest, ok := strings.CutPrefix(strings.ToLower(strings.TrimSpace(label)), "priority")
		if !ok {
			continue
		}
		if p, err := domain.ParsePriority(strings.TrimLeft(rest, ":/- ")); err == nil {
			return p
		}
	}
	return domain.PriorityLow
}

func remoteDeadline(ri gh.Issue) domain.Deadline {
	if ri.DueOn == nil {
		return domain.NoDeadline
	}
	d, err := domain.ParseDeadline(ri.DueOn.UTC().Format(domain.DeadlineLayout))
	if err != nil {
		return domain.NoDeadline
	}
	return d
}
