package command

import (
	"fmt"

	"github.com/h0rv/projbook/internal/domain"
	"github.com/h0rv/projbook/internal/store"
)

const (
	MessageProjectAdded       = "New project added: %s"
	MessageProjectEdited      = "Project %s has been edited"
	MessageProjectDeleted     = "Deleted project: %s"
	MessageProjectsListed     = "%d projects listed!"
	MessageDuplicateProject   = "This project already exists in the address book"
	MessageShowingAllProjects = "Listed all projects"

	// Clients are stored inside their projects, so one without projects is
	// dropped on the next save.
	MessageClientOrphaned = "%s. Client %s has no projects left and will not be kept after a restart."
)

// AddProject creates a project, optionally linked to an existing client.
type AddProject struct {
	Project domain.PendingProject
}

func (c AddProject) Execute(s *store.Store) (Result, error) {
	project, client, err := c.Project.Resolve(s)
	if err != nil {
		return Result{}, err
	}
	if err := s.AddProject(project); err != nil {
		return Result{}, err
	}
	domain.LinkClient(project, client)
	return changed(s, ViewProjects, fmt.Sprintf(MessageProjectAdded, project.UI())), nil
}

// EditProject changes the fields of a project. Nil fields are left as is;
// a ClientID relinks the project to that client.
type EditProject struct {
	ID         int
	Name       *domain.Name
	Repository *domain.Repository
	Deadline   *domain.Deadline
	ClientID   *int
}

func (c EditProject) Execute(s *store.Store) (Result, error) {
	project, err := s.Project(c.ID)
	if err != nil {
		return Result{}, err
	}
	var client *domain.Client
	if c.ClientID != nil {
		if client, err = s.Client(*c.ClientID); err != nil {
			return Result{}, err
		}
	}
	if c.Name != nil && s.ProjectNameTaken(*c.Name, project.ID()) {
		return Result{}, &domain.DuplicateError{Message: MessageDuplicateProject}
	}

	if c.Name != nil {
		project.Name = *c.Name
	}
	if c.Repository != nil {
		project.Repository = *c.Repository
	}
	if c.Deadline != nil {
		project.Deadline = *c.Deadline
	}
	prev := project.Client()
	if client != nil {
		domain.LinkClient(project, client)
	}
	return changed(s, ViewProjects, orphaned(fmt.Sprintf(MessageProjectEdited, project.UI()), prev)), nil
}

// DeleteProject removes a project together with its issues. The client, if
// any, is kept.
type DeleteProject struct {
	ID int
}

func (c DeleteProject) Execute(s *store.Store) (Result, error) {
	project, err := s.Project(c.ID)
	if err != nil {
		return Result{}, err
	}
	for _, issue := range project.Issues() {
		if err := s.RemoveIssue(issue); err != nil {
			return Result{}, err
		}
	}
	prev := project.Client()
	domain.LinkClient(project, nil)
	if err := s.RemoveProject(project); err != nil {
		return Result{}, err
	}
	return changed(s, ViewProjects, orphaned(fmt.Sprintf(MessageProjectDeleted, project.UI()), prev)), nil
}

// orphaned appends a warning to message when client was left without projects.
func orphaned(message string, client *domain.Client) string {
	if client == nil || len(client.Projects()) > 0 {
		return message
	}
	return fmt.Sprintf(MessageClientOrphaned, message, client.UI())
}

// ListProjects shows every project.
type ListProjects struct{}

func (ListProjects) Execute(s *store.Store) (Result, error) {
	return show(s, ViewProjects, MessageShowingAllProjects), nil
}

// FindProjects shows the projects matching every given field.
type FindProjects struct {
	Names        []string
	Repositories []string
}

func (c FindProjects) matches(p *domain.Project) bool {
	return matchesAnyWord(p.Name.String(), c.Names) &&
		matchesAnyWord(p.Repository.String(), c.Repositories)
}

func (c FindProjects) Execute(s *store.Store) (Result, error) {
	found := s.FilterProjects(c.matches)
	return Result{
		Message:  fmt.Sprintf(MessageProjectsListed, len(found)),
		View:     ViewProjects,
		Projects: found,
	}, nil
}
