package command

import (
	"fmt"

	"github.com/h0rv/projbook/internal/domain"
	"github.com/h0rv/projbook/internal/store"
)

const (
	MessageIssueAdded       = "New issue added: %s"
	MessageIssueEdited      = "Issue %s has been edited"
	MessageIssueDeleted     = "Deleted issue: %s"
	MessageIssueMarked      = "Issue %s marked as completed"
	MessageIssueUnmarked    = "Issue %s marked as incomplete"
	MessageIssuesListed     = "%d issues listed!"
	MessageDuplicateIssue   = "This issue already exists in the address book"
	MessageShowingAllIssues = "Listed all issues"
)

// AddIssue creates an issue on an existing project.
type AddIssue struct {
	Issue domain.PendingIssue
}

func (c AddIssue) Execute(s *store.Store) (Result, error) {
	issue, err := c.Issue.Resolve(s)
	if err != nil {
		return Result{}, err
	}
	if err := s.AddIssue(issue); err != nil {
		return Result{}, err
	}
	return changed(s, ViewIssues, fmt.Sprintf(MessageIssueAdded, issue.UI())), nil
}

// EditIssue changes the fields of an issue. A ProjectID moves the issue.
type EditIssue struct {
	ID        int
	Title     *domain.Title
	Deadline  *domain.Deadline
	Priority  *domain.Priority
	Status    *domain.Status
	ProjectID *int
}

func (c EditIssue) Execute(s *store.Store) (Result, error) {
	issue, err := s.Issue(c.ID)
	if err != nil {
		return Result{}, err
	}
	var project *domain.Project
	if c.ProjectID != nil {
		if project, err = s.Project(*c.ProjectID); err != nil {
			return Result{}, err
		}
	}
	if c.Title != nil && s.IssueTitleTaken(*c.Title, issue.ID()) {
		return Result{}, &domain.DuplicateError{Message: MessageDuplicateIssue}
	}

	if c.Title != nil {
		issue.Title = *c.Title
	}
	if c.Deadline != nil {
		issue.Deadline = *c.Deadline
	}
	if c.Priority != nil {
		issue.Priority = *c.Priority
	}
	if c.Status != nil {
		issue.Status = *c.Status
	}
	if project != nil {
		domain.MoveIssue(issue, project)
	}
	return changed(s, ViewIssues, fmt.Sprintf(MessageIssueEdited, issue.UI())), nil
}

// DeleteIssue removes an issue from the book and from its project.
type DeleteIssue struct {
	ID int
}

func (c DeleteIssue) Execute(s *store.Store) (Result, error) {
	issue, err := s.Issue(c.ID)
	if err != nil {
		return Result{}, err
	}
	if err := s.RemoveIssue(issue); err != nil {
		return Result{}, err
	}
	return changed(s, ViewIssues, fmt.Sprintf(MessageIssueDeleted, issue.UI())), nil
}

// SetIssueStatus marks an issue complete or incomplete.
type SetIssueStatus struct {
	ID     int
	Status domain.Status
}

func (c SetIssueStatus) Execute(s *store.Store) (Result, error) {
	issue, err := s.Issue(c.ID)
	if err != nil {
		return Result{}, err
	}
	issue.Status = c.Status
	format := MessageIssueUnmarked
	if c.Status == domain.Complete {
		format = MessageIssueMarked
	}
	return changed(s, ViewIssues, fmt.Sprintf(format, issue.UI())), nil
}

// ListIssues shows every issue.
type ListIssues struct{}

func (ListIssues) Execute(s *store.Store) (Result, error) {
	return show(s, ViewIssues, MessageShowingAllIssues), nil
}

// FindIssues shows the issues matching every given field.
type FindIssues struct {
	Titles     []string
	Priorities []domain.Priority
	Statuses   []domain.Status
	ProjectIDs []int
}

func (c FindIssues) matches(i *domain.Issue) bool {
	return matchesAnyWord(i.Title.String(), c.Titles) &&
		matchesAny(i.Priority, c.Priorities) &&
		matchesAny(i.Status, c.Statuses) &&
		matchesAny(i.Project().ID(), c.ProjectIDs)
}

func (c FindIssues) Execute(s *store.Store) (Result, error) {
	found := s.FilterIssues(c.matches)
	return Result{
		Message: fmt.Sprintf(MessageIssuesListed, len(found)),
		View:    ViewIssues,
		Issues:  found,
	}, nil
}
