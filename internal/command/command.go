// Package command holds the parsed commands of the address book and the
// executors that apply them to a store. A command value is plain data: it
// performs no work until Execute is called.
package command

import (
	"github.com/h0rv/projbook/internal/domain"
	"github.com/h0rv/projbook/internal/store"
)

// View names the entity list a frontend should bring to the front.
type View int

const (
	ViewNone View = iota
	ViewClients
	ViewProjects
	ViewIssues
)

func (v View) String() string {
	switch v {
	case ViewClients:
		return "clients"
	case ViewProjects:
		return "projects"
	case ViewIssues:
		return "issues"
	default:
		return "none"
	}
}

// Next cycles through the entity views, skipping ViewNone.
func (v View) Next() View {
	switch v {
	case ViewClients:
		return ViewProjects
	case ViewProjects:
		return ViewIssues
	default:
		return ViewClients
	}
}

// Result is what a command hands back to the frontend.
type Result struct {
	Message string
	View    View

	// The entities to display for View. Find commands fill in the filtered
	// list; every other command fills in the whole collection.
	Clients  []*domain.Client
	Projects []*domain.Project
	Issues   []*domain.Issue

	// Changed is set when the store was mutated and must be persisted.
	Changed bool
	Exit    bool
	Help    bool
}

// Command is a parsed user request.
type Command interface {
	Execute(s *store.Store) (Result, error)
}

// show builds a result displaying the full collection for view.
func show(s *store.Store, view View, message string) Result {
	r := Result{Message: message, View: view}
	switch view {
	case ViewClients:
		r.Clients = s.Clients()
	case ViewProjects:
		r.Projects = s.Projects()
	case ViewIssues:
		r.Issues = s.Issues()
	}
	return r
}

// changed is show for commands that mutate the store.
func changed(s *store.Store, view View, message string) Result {
	r := show(s, view, message)
	r.Changed = true
	return r
}
