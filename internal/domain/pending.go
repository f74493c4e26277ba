package domain

// Resolver is the read-only view of the address book that pending entities
// need to become live entities.
type Resolver interface {
	Client(id int) (*Client, error)
	Project(id int) (*Project, error)
	NextClientID() int
	NextProjectID() int
	NextIssueID() int
}

// Not-found messages for unresolved foreign keys.
const (
	MessageClientNotFound  = "This client id does not exist"
	MessageProjectNotFound = "This project id does not exist"
	MessageIssueNotFound   = "This issue id does not exist"
)

// PendingClient holds parsed client fields and the raw ID of the project the
// client will be linked to.
type PendingClient struct {
	Name      Name
	Phone     Phone
	Email     Email
	ProjectID int
}

// Resolve checks the project exists and builds an unlinked client with a
// fresh ID. Linking is left to the caller once the client is stored.
func (pc PendingClient) Resolve(r Resolver) (*Client, *Project, error) {
	project, err := r.Project(pc.ProjectID)
	if err != nil {
		return nil, nil, &NotFoundError{Message: MessageProjectNotFound}
	}
	return NewClient(r.NextClientID(), pc.Name, pc.Phone, pc.Email), project, nil
}

// PendingProject holds parsed project fields. ClientID is 0 when no client
// was given.
type PendingProject struct {
	Name       Name
	Repository Repository
	Deadline   Deadline
	ClientID   int
}

// Resolve builds a project with a fresh ID and looks up its client, which is
// nil when ClientID is 0.
func (pp PendingProject) Resolve(r Resolver) (*Project, *Client, error) {
	var client *Client
	if pp.ClientID != 0 {
		c, err := r.Client(pp.ClientID)
		if err != nil {
			return nil, nil, &NotFoundError{Message: MessageClientNotFound}
		}
		client = c
	}
	return NewProject(r.NextProjectID(), pp.Name, pp.Repository, pp.Deadline), client, nil
}

// PendingIssue holds parsed issue fields and the raw ID of the owning project.
type PendingIssue struct {
	Title     Title
	Deadline  Deadline
	Priority  Priority
	Status    Status
	ProjectID int
}

// Resolve builds an issue with a fresh ID owned by the referenced project.
func (pi PendingIssue) Resolve(r Resolver) (*Issue, error) {
	project, err := r.Project(pi.ProjectID)
	if err != nil {
		return nil, &NotFoundError{Message: MessageProjectNotFound}
	}
	return NewIssue(r.NextIssueID(), pi.Title, pi.Deadline, pi.Priority, pi.Status, project), nil
}
