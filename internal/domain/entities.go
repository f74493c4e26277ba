package domain

import (
	"fmt"
	"slices"
)

// Client is a person or organisation that commissions projects.
// The project list holds back-references only; Project owns the link.
type Client struct {
	id       int
	Name     Name
	Phone    Phone
	Email    Email
	projects []*Project
}

// NewClient creates an unlinked client.
func NewClient(id int, name Name, phone Phone, email Email) *Client {
	return &Client{id: id, Name: name, Phone: phone, Email: email}
}

func (c *Client) ID() int { return c.id }

// Projects returns the projects whose client is c, ordered by ID.
func (c *Client) Projects() []*Project {
	return slices.Clone(c.projects)
}

// SameClient reports whether both clients have the same name.
func (c *Client) SameClient(other *Client) bool {
	if c == other {
		return true
	}
	return c != nil && other != nil && c.Name == other.Name
}

// Equal compares the identifier, every field and the linked project IDs.
func (c *Client) Equal(other *Client) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.id == other.id &&
		c.Name == other.Name &&
		c.Phone == other.Phone &&
		c.Email == other.Email &&
		slices.Equal(projectIDs(c.projects), projectIDs(other.projects))
}

func (c *Client) String() string { return c.Name.String() }

func (c *Client) UI() string {
	return fmt.Sprintf("%s %s", c.Name, IDUI(c.id))
}

// Project is a piece of work, optionally commissioned by one client.
type Project struct {
	id         int
	Name       Name
	Repository Repository
	Deadline   Deadline
	client     *Client
	issues     []*Issue
}

// NewProject creates a project without client or issues.
func NewProject(id int, name Name, repository Repository, deadline Deadline) *Project {
	return &Project{id: id, Name: name, Repository: repository, Deadline: deadline}
}

func (p *Project) ID() int { return p.id }

// Client returns the commissioning client, or nil when the project has none.
func (p *Project) Client() *Client { return p.client }

// HasClient reports whether a client is linked to the project.
func (p *Project) HasClient() bool { return p.client != nil }

// Issues returns the issues belonging to the project, ordered by ID.
func (p *Project) Issues() []*Issue {
	return slices.Clone(p.issues)
}

// ClientUI renders the linked client for display.
func (p *Project) ClientUI() string {
	if p.client == nil {
		return "No Client Set"
	}
	return "Client: " + p.client.UI()
}

// IssueSummary renders the issue count and how many are complete.
func (p *Project) IssueSummary() string {
	done := 0
	for _, i := range p.issues {
		if i.Status == Complete {
			done++
		}
	}
	return fmt.Sprintf("%d issues (%d completed)", len(p.issues), done)
}

// SameProject reports whether both projects have the same name.
func (p *Project) SameProject(other *Project) bool {
	if p == other {
		return true
	}
	return p != nil && other != nil && p.Name == other.Name
}

// Equal compares the identifier, every field, the client ID and the issue IDs.
func (p *Project) Equal(other *Project) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.id == other.id &&
		p.Name == other.Name &&
		p.Repository == other.Repository &&
		p.Deadline == other.Deadline &&
		clientID(p.client) == clientID(other.client) &&
		slices.Equal(issueIDs(p.issues), issueIDs(other.issues))
}

func (p *Project) String() string { return p.Name.String() }

func (p *Project) UI() string {
	return fmt.Sprintf("%s %s", p.Name, IDUI(p.id))
}

// Issue is a unit of work tracked against exactly one project.
type Issue struct {
	id       int
	Title    Title
	Deadline Deadline
	Priority Priority
	Status   Status
	project  *Project
}

// NewIssue creates an issue owned by project. The issue is not attached to
// the project's issue list until AttachIssue is called.
func NewIssue(id int, title Title, deadline Deadline, priority Priority, status Status, project *Project) *Issue {
	return &Issue{
		id:       id,
		Title:    title,
		Deadline: deadline,
		Priority: priority,
		Status:   status,
		project:  project,
	}
}

func (i *Issue) ID() int { return i.id }

// Project returns the owning project.
func (i *Issue) Project() *Project { return i.project }

// SameIssue reports whether both issues have the same title.
func (i *Issue) SameIssue(other *Issue) bool {
	if i == other {
		return true
	}
	return i != nil && other != nil && i.Title == other.Title
}

// Equal compares the identifier, every field and the owning project ID.
func (i *Issue) Equal(other *Issue) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.id == other.id &&
		i.Title == other.Title &&
		i.Deadline == other.Deadline &&
		i.Priority == other.Priority &&
		i.Status == other.Status &&
		projectID(i.project) == projectID(other.project)
}

func (i *Issue) String() string { return i.Title.String() }

func (i *Issue) UI() string {
	return fmt.Sprintf("%s %s", i.Title, IDUI(i.id))
}

func clientID(c *Client) int {
	if c == nil {
		return 0
	}
	return c.id
}

func projectID(p *Project) int {
	if p == nil {
		return 0
	}
	return p.id
}

func projectIDs(ps []*Project) []int {
	ids := make([]int, len(ps))
	for i, p := range ps {
		ids[i] = p.id
	}
	return ids
}

func issueIDs(is []*Issue) []int {
	ids := make([]int, len(is))
	for n, i := range is {
		ids[n] = i.id
	}
	return ids
}
