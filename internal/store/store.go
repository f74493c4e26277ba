// Package store provides the in-memory address book: three ID-indexed
// collections of clients, projects and issues with weak-identity uniqueness.
// It is the only place where entities are added or removed; relationship
// bookkeeping between entities lives in the domain package.
package store

import (
	"slices"

	"github.com/h0rv/projbook/internal/domain"
)

// Store holds the clients, projects and issues of one address book.
// It is not safe for concurrent use; commands are applied one at a time.
type Store struct {
	clients  *collection[*domain.Client]
	projects *collection[*domain.Project]
	issues   *collection[*domain.Issue]
}

// New creates a new empty Store instance.
func New() *Store {
	return &Store{
		clients:  newCollection("client", (*domain.Client).SameClient),
		projects: newCollection("project", (*domain.Project).SameProject),
		issues:   newCollection("issue", (*domain.Issue).SameIssue),
	}
}

var _ domain.Resolver = (*Store)(nil)

// Clients returns all clients in insertion order.
func (s *Store) Clients() []*domain.Client { return s.clients.list() }

// Projects returns all projects in insertion order.
func (s *Store) Projects() []*domain.Project { return s.projects.list() }

// Issues returns all issues in insertion order.
func (s *Store) Issues() []*domain.Issue { return s.issues.list() }

// FilterClients returns the clients matching keep, without changing the store.
func (s *Store) FilterClients(keep func(*domain.Client) bool) []*domain.Client {
	return s.clients.filter(keep)
}

// FilterProjects returns the projects matching keep.
func (s *Store) FilterProjects(keep func(*domain.Project) bool) []*domain.Project {
	return s.projects.filter(keep)
}

// FilterIssues returns the issues matching keep.
func (s *Store) FilterIssues(keep func(*domain.Issue) bool) []*domain.Issue {
	return s.issues.filter(keep)
}

// Client retrieves a client by ID, returning a NotFoundError if absent.
func (s *Store) Client(id int) (*domain.Client, error) { return s.clients.get(id) }

// Project retrieves a project by ID, returning a NotFoundError if absent.
func (s *Store) Project(id int) (*domain.Project, error) { return s.projects.get(id) }

// Issue retrieves an issue by ID, returning a NotFoundError if absent.
func (s *Store) Issue(id int) (*domain.Issue, error) { return s.issues.get(id) }

func (s *Store) HasClientID(id int) bool  { return s.clients.containsID(id) }
func (s *Store) HasProjectID(id int) bool { return s.projects.containsID(id) }
func (s *Store) HasIssueID(id int) bool   { return s.issues.containsID(id) }

// HasClient reports whether a client with the same name is stored.
func (s *Store) HasClient(c *domain.Client) bool { return s.clients.contains(c) }

// HasProject reports whether a project with the same name is stored.
func (s *Store) HasProject(p *domain.Project) bool { return s.projects.contains(p) }

// HasIssue reports whether an issue with the same title is stored.
func (s *Store) HasIssue(i *domain.Issue) bool { return s.issues.contains(i) }

func (s *Store) NextClientID() int  { return s.clients.nextID() }
func (s *Store) NextProjectID() int { return s.projects.nextID() }
func (s *Store) NextIssueID() int   { return s.issues.nextID() }

// ClientNameTaken reports whether a client other than exceptID is named name.
func (s *Store) ClientNameTaken(name domain.Name, exceptID int) bool {
	return slices.ContainsFunc(s.clients.items, func(c *domain.Client) bool {
		return c.ID() != exceptID && c.Name == name
	})
}

// ProjectNameTaken reports whether a project other than exceptID is named name.
func (s *Store) ProjectNameTaken(name domain.Name, exceptID int) bool {
	return slices.ContainsFunc(s.projects.items, func(p *domain.Project) bool {
		return p.ID() != exceptID && p.Name == name
	})
}

// IssueTitleTaken reports whether an issue other than exceptID has title.
func (s *Store) IssueTitleTaken(title domain.Title, exceptID int) bool {
	return slices.ContainsFunc(s.issues.items, func(i *domain.Issue) bool {
		return i.ID() != exceptID && i.Title == title
	})
}

// AddClient appends c. Linking c to projects is the caller's job.
func (s *Store) AddClient(c *domain.Client) error { return s.clients.add(c) }

// AddProject appends p.
func (s *Store) AddProject(p *domain.Project) error { return s.projects.add(p) }

// AddIssue appends i and attaches it to its project's issue list.
func (s *Store) AddIssue(i *domain.Issue) error {
	if err := s.issues.add(i); err != nil {
		return err
	}
	domain.AttachIssue(i)
	return nil
}

// RemoveClient removes c. The caller unlinks its projects first.
func (s *Store) RemoveClient(c *domain.Client) error { return s.clients.remove(c) }

// RemoveProject removes p.
func (s *Store) RemoveProject(p *domain.Project) error { return s.projects.remove(p) }

// RemoveIssue removes i and detaches it from its project.
func (s *Store) RemoveIssue(i *domain.Issue) error {
	if err := s.issues.remove(i); err != nil {
		return err
	}
	domain.DetachIssue(i)
	return nil
}

// ReplaceClient swaps target for edited at the same position.
func (s *Store) ReplaceClient(target, edited *domain.Client) error {
	return s.clients.replace(target, edited)
}

// ReplaceProject swaps target for edited at the same position.
func (s *Store) ReplaceProject(target, edited *domain.Project) error {
	return s.projects.replace(target, edited)
}

// ReplaceIssue swaps target for edited at the same position.
func (s *Store) ReplaceIssue(target, edited *domain.Issue) error {
	return s.issues.replace(target, edited)
}

// SetClients replaces all clients. Used when loading from persistence.
func (s *Store) SetClients(clients []*domain.Client) error { return s.clients.setAll(clients) }

// SetProjects replaces all projects. Used when loading from persistence.
func (s *Store) SetProjects(projects []*domain.Project) error {
	return s.projects.setAll(projects)
}

// SetIssues replaces all issues and attaches each to its project.
func (s *Store) SetIssues(issues []*domain.Issue) error {
	if err := s.issues.setAll(issues); err != nil {
		return err
	}
	for _, i := range issues {
		domain.AttachIssue(i)
	}
	return nil
}

// SortClientsByID orders the client list by ascending ID.
func (s *Store) SortClientsByID() { s.clients.sortByID() }

// Clear resets the store to empty state.
func (s *Store) Clear() {
	s.clients.items = nil
	s.projects.items = nil
	s.issues.items = nil
}

// Equal compares every collection entity by entity using strong equality.
func (s *Store) Equal(other *Store) bool {
	return slices.EqualFunc(s.clients.items, other.clients.items, (*domain.Client).Equal) &&
		slices.EqualFunc(s.projects.items, other.projects.items, (*domain.Project).Equal) &&
		slices.EqualFunc(s.issues.items, other.issues.items, (*domain.Issue).Equal)
}

// Counts returns the size of each collection.
func (s *Store) Counts() (clients, projects, issues int) {
	return len(s.clients.items), len(s.projects.items), len(s.issues.items)
}
