package command

import (
	"fmt"

	"github.com/h0rv/projbook/internal/domain"
	"github.com/h0rv/projbook/internal/store"
)

const (
	MessageClientAdded       = "New client added: %s"
	MessageClientEdited      = "Client %s has been edited"
	MessageClientDeleted     = "Deleted client: %s"
	MessageClientsListed     = "%d clients listed!"
	MessageClientAlreadySet  = "This project already has a client"
	MessageDuplicateClient   = "This client already exists in the address book"
	MessageShowingAllClients = "Listed all clients"
)

// AddClient creates a client and links it to an existing project that has
// no client yet.
type AddClient struct {
	Client domain.PendingClient
}

func (c AddClient) Execute(s *store.Store) (Result, error) {
	client, project, err := c.Client.Resolve(s)
	if err != nil {
		return Result{}, err
	}
	if project.HasClient() {
		return Result{}, &domain.DuplicateError{Message: MessageClientAlreadySet}
	}
	if err := s.AddClient(client); err != nil {
		return Result{}, err
	}
	domain.LinkClient(project, client)
	return changed(s, ViewClients, fmt.Sprintf(MessageClientAdded, client.UI())), nil
}

// EditClient changes the fields of a client. Nil fields are left as is.
type EditClient struct {
	ID    int
	Name  *domain.Name
	Phone *domain.Phone
	Email *domain.Email
}

func (c EditClient) Execute(s *store.Store) (Result, error) {
	client, err := s.Client(c.ID)
	if err != nil {
		return Result{}, err
	}
	if c.Name != nil && s.ClientNameTaken(*c.Name, client.ID()) {
		return Result{}, &domain.DuplicateError{Message: MessageDuplicateClient}
	}
	if c.Name != nil {
		client.Name = *c.Name
	}
	if c.Phone != nil {
		client.Phone = *c.Phone
	}
	if c.Email != nil {
		client.Email = *c.Email
	}
	return changed(s, ViewClients, fmt.Sprintf(MessageClientEdited, client.UI())), nil
}

// DeleteClient removes a client. Its projects are kept and lose their client.
type DeleteClient struct {
	ID int
}

func (c DeleteClient) Execute(s *store.Store) (Result, error) {
	client, err := s.Client(c.ID)
	if err != nil {
		return Result{}, err
	}
	domain.UnlinkClient(client)
	if err := s.RemoveClient(client); err != nil {
		return Result{}, err
	}
	return changed(s, ViewClients, fmt.Sprintf(MessageClientDeleted, client.UI())), nil
}

// ListClients shows every client.
type ListClients struct{}

func (ListClients) Execute(s *store.Store) (Result, error) {
	return show(s, ViewClients, MessageShowingAllClients), nil
}

// FindClients shows the clients matching every given field. Within a field
// any keyword may match.
type FindClients struct {
	Names  []string
	Emails []string
	Phones []string
}

func (c FindClients) matches(client *domain.Client) bool {
	return matchesAnyWord(client.Name.String(), c.Names) &&
		matchesAnyWord(client.Email.String(), c.Emails) &&
		matchesAnyWord(client.Phone.String(), c.Phones)
}

func (c FindClients) Execute(s *store.Store) (Result, error) {
	found := s.FilterClients(c.matches)
	return Result{
		Message: fmt.Sprintf(MessageClientsListed, len(found)),
		View:    ViewClients,
		Clients: found,
	}, nil
}
