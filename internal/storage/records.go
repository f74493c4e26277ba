// Package storage persists the address book. Clients are not stored on their
// own: each project record embeds its client, and clients are rebuilt and
// relinked from the projects on load.
package storage

import (
	"fmt"
	"strconv"

	"github.com/h0rv/projbook/internal/domain"
	"github.com/h0rv/projbook/internal/store"
)

// Load error messages.
const (
	MessageMissingField      = "%s's %s field is missing!"
	MessageDuplicateProject  = "Projects list contains duplicate project(s)."
	MessageDuplicateClient   = "Clients list contains conflicting client(s)."
	MessageDuplicateIssue    = "Issues list contains duplicate issue(s)."
	MessageUnknownProject    = "Issue %s refers to project %s which does not exist"
	MessageIllegalFieldValue = "%s's %s field is invalid"
)

// Book is the persisted form of a whole address book.
type Book struct {
	Projects []ProjectRecord `json:"projects" yaml:"projects"`
	Issues   []IssueRecord   `json:"issues" yaml:"issues"`
}

// ProjectRecord is one persisted project with its client embedded.
type ProjectRecord struct {
	Name       string       `json:"name" yaml:"name"`
	Repository string       `json:"repository" yaml:"repository"`
	Deadline   string       `json:"deadline" yaml:"deadline"`
	ClientID   string       `json:"clientId" yaml:"clientId"`
	ProjectID  string       `json:"projectId" yaml:"projectId"`
	Client     ClientRecord `json:"client" yaml:"client"`
}

// ClientRecord is a client embedded in a project record. An empty Name means
// the project has no client.
type ClientRecord struct {
	Name     string `json:"name" yaml:"name"`
	Phone    string `json:"phone" yaml:"phone"`
	Email    string `json:"email" yaml:"email"`
	ClientID string `json:"clientId" yaml:"clientId"`
}

// IssueRecord is one persisted issue. Project holds the owning project's ID.
type IssueRecord struct {
	Title    string `json:"title" yaml:"title"`
	Priority string `json:"priority" yaml:"priority"`
	Deadline string `json:"deadline" yaml:"deadline"`
	Status   string `json:"status" yaml:"status"`
	IssueID  string `json:"issueId" yaml:"issueId"`
	Project  string `json:"project" yaml:"project"`
}

// ToBook converts a store into its persisted form.
func ToBook(s *store.Store) Book {
	b := Book{
		Projects: make([]ProjectRecord, 0, len(s.Projects())),
		Issues:   make([]IssueRecord, 0, len(s.Issues())),
	}
	for _, p := range s.Projects() {
		rec := ProjectRecord{
			Name:       p.Name.String(),
			Repository: p.Repository.String(),
			Deadline:   p.Deadline.String(),
			ProjectID:  strconv.Itoa(p.ID()),
		}
		if c := p.Client(); c != nil {
			rec.ClientID = strconv.Itoa(c.ID())
			rec.Client = ClientRecord{
				Name:     c.Name.String(),
				Phone:    c.Phone.String(),
				Email:    c.Email.String(),
				ClientID: strconv.Itoa(c.ID()),
			}
		}
		b.Projects = append(b.Projects, rec)
	}
	for _, i := range s.Issues() {
		b.Issues = append(b.Issues, IssueRecord{
			Title:    i.Title.String(),
			Priority: i.Priority.String(),
			Deadline: i.Deadline.String(),
			Status:   i.Status.String(),
			IssueID:  strconv.Itoa(i.ID()),
			Project:  strconv.Itoa(i.Project().ID()),
		})
	}
	return b
}

// FromBook rebuilds a store from its persisted form. Projects are loaded
// first, then the clients embedded in them, then issues. Any invalid record
// fails the whole load with a PersistenceError.
func FromBook(b Book) (*store.Store, error) {
	s := store.New()

	projects := make([]*domain.Project, 0, len(b.Projects))
	byID := make(map[int]*domain.Project, len(b.Projects))
	for _, rec := range b.Projects {
		p, err := rec.toProject()
		if err != nil {
			return nil, err
		}
		if _, dup := byID[p.ID()]; dup {
			return nil, &domain.PersistenceError{Message: MessageDuplicateProject}
		}
		byID[p.ID()] = p
		projects = append(projects, p)
	}
	if err := s.SetProjects(projects); err != nil {
		return nil, &domain.PersistenceError{Message: MessageDuplicateProject, Err: err}
	}

	clients := make(map[int]*domain.Client)
	for n, rec := range b.Projects {
		if rec.Client.Name == "" {
			continue
		}
		c, err := rec.Client.toClient()
		if err != nil {
			return nil, err
		}
		if seen, ok := clients[c.ID()]; ok {
			if seen.Name != c.Name || seen.Phone != c.Phone || seen.Email != c.Email {
				return nil, &domain.PersistenceError{Message: MessageDuplicateClient}
			}
			c = seen
		} else {
			clients[c.ID()] = c
		}
		domain.LinkClient(projects[n], c)
	}
	list := make([]*domain.Client, 0, len(clients))
	for _, c := range clients {
		list = append(list, c)
	}
	if err := s.SetClients(list); err != nil {
		return nil, &domain.PersistenceError{Message: MessageDuplicateClient, Err: err}
	}
	s.SortClientsByID()

	issues := make([]*domain.Issue, 0, len(b.Issues))
	seenIssues := make(map[int]bool, len(b.Issues))
	for _, rec := range b.Issues {
		i, err := rec.toIssue(byID)
		if err != nil {
			return nil, err
		}
		if seenIssues[i.ID()] {
			return nil, &domain.PersistenceError{Message: MessageDuplicateIssue}
		}
		seenIssues[i.ID()] = true
		issues = append(issues, i)
	}
	if err := s.SetIssues(issues); err != nil {
		return nil, &domain.PersistenceError{Message: MessageDuplicateIssue, Err: err}
	}
	return s, nil
}

func missing(entity, field string) error {
	return &domain.PersistenceError{Message: fmt.Sprintf(MessageMissingField, entity, field)}
}

func illegal(entity, field string, err error) error {
	return &domain.PersistenceError{
		Message: fmt.Sprintf(MessageIllegalFieldValue, entity, field),
		Err:     err,
	}
}

// required parses a field that must be present.
func required[T any](entity, field, raw string, parse func(string) (T, error)) (T, error) {
	var zero T
	if raw == "" {
		return zero, missing(entity, field)
	}
	v, err := parse(raw)
	if err != nil {
		return zero, illegal(entity, field, err)
	}
	return v, nil
}

// optional parses a field that may be empty, returning empty in that case.
func optional[T any](entity, field, raw string, empty T, parse func(string) (T, error)) (T, error) {
	if raw == "" {
		return empty, nil
	}
	v, err := parse(raw)
	if err != nil {
		return empty, illegal(entity, field, err)
	}
	return v, nil
}

func idParser(kind string) func(string) (int, error) {
	return func(raw string) (int, error) { return domain.ParseID(kind, raw) }
}

func (rec ProjectRecord) toProject() (*domain.Project, error) {
	const entity = "Project"
	name, err := required(entity, "name", rec.Name, domain.ParseName)
	if err != nil {
		return nil, err
	}
	id, err := required(entity, "projectId", rec.ProjectID, idParser(entity))
	if err != nil {
		return nil, err
	}
	repo, err := optional(entity, "repository", rec.Repository, domain.NoRepository, domain.ParseRepository)
	if err != nil {
		return nil, err
	}
	deadline, err := optional(entity, "deadline", rec.Deadline, domain.NoDeadline, domain.ParseDeadline)
	if err != nil {
		return nil, err
	}
	return domain.NewProject(id, name, repo, deadline), nil
}

func (rec ClientRecord) toClient() (*domain.Client, error) {
	const entity = "Client"
	name, err := required(entity, "name", rec.Name, domain.ParseName)
	if err != nil {
		return nil, err
	}
	id, err := required(entity, "clientId", rec.ClientID, idParser(entity))
	if err != nil {
		return nil, err
	}
	phone, err := optional(entity, "phone", rec.Phone, domain.NoPhone, domain.ParsePhone)
	if err != nil {
		return nil, err
	}
	email, err := optional(entity, "email", rec.Email, domain.NoEmail, domain.ParseEmail)
	if err != nil {
		return nil, err
	}
	return domain.NewClient(id, name, phone, email), nil
}

func (rec IssueRecord) toIssue(projects map[int]*domain.Project) (*domain.Issue, error) {
	const entity = "Issue"
	title, err := required(entity, "title", rec.Title, domain.ParseTitle)
	if err != nil {
		return nil, err
	}
	id, err := required(entity, "issueId", rec.IssueID, idParser(entity))
	if err != nil {
		return nil, err
	}
	priority, err := required(entity, "priority", rec.Priority, domain.ParsePriority)
	if err != nil {
		return nil, err
	}
	status, err := required(entity, "status", rec.Status, domain.ParseStatus)
	if err != nil {
		return nil, err
	}
	deadline, err := optional(entity, "deadline", rec.Deadline, domain.NoDeadline, domain.ParseDeadline)
	if err != nil {
		return nil, err
	}
	projectID, err := required(entity, "project", rec.Project, idParser("Project"))
	if err != nil {
		return nil, err
	}
	project, ok := projects[projectID]
	if !ok {
		return nil, &domain.PersistenceError{Message: fmt.Sprintf(MessageUnknownProject, rec.IssueID, rec.Project)}
	}
	return domain.NewIssue(id, title, deadline, priority, status, project), nil
}
