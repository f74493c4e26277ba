package command

import "github.com/h0rv/projbook/internal/store"

const (
	MessageCleared = "Address book has been cleared!"
	MessageExiting = "Exiting address book as requested ..."
)

// Clear empties the address book.
type Clear struct{}

func (Clear) Execute(s *store.Store) (Result, error) {
	s.Clear()
	return changed(s, ViewProjects, MessageCleared), nil
}

// Help shows the command overview.
type Help struct{}

func (Help) Execute(*store.Store) (Result, error) {
	return Result{Message: HelpMessage, Help: true}, nil
}

// Exit asks the frontend to quit.
type Exit struct{}

func (Exit) Execute(*store.Store) (Result, error) {
	return Result{Message: MessageExiting, Exit: true}, nil
}
