// Package logic is the boundary between frontends and the address book: it
// parses input, executes commands, persists changes and reports every
// failure back as an error the frontend can show verbatim.
package logic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/h0rv/projbook/internal/command"
	"github.com/h0rv/projbook/internal/parser"
	"github.com/h0rv/projbook/internal/storage"
	"github.com/h0rv/projbook/internal/store"
)

// Manager owns the in-memory book and the storage it is persisted to.
// Commands are applied one at a time; Manager is not safe for concurrent use.
type Manager struct {
	store   *store.Store
	storage storage.Storage
	logger  *slog.Logger
	loadErr error
}

// New loads the book from st. An unreadable or corrupt book is logged and
// replaced by an empty one so the application can still start; LoadError
// reports what went wrong.
func New(ctx context.Context, st storage.Storage, logger *slog.Logger) *Manager {
	m := &Manager{storage: st, logger: logger}
	s, err := st.Load(ctx)
	if err != nil {
		logger.Warn("could not load address book, starting with an empty one", "error", err)
		s = store.New()
		m.loadErr = err
	}
	m.store = s
	clients, projects, issues := s.Counts()
	logger.Debug("address book loaded", "clients", clients, "projects", projects, "issues", issues)
	return m
}

// LoadError returns the error that made New start with an empty book.
func (m *Manager) LoadError() error { return m.loadErr }

// Store exposes the book for read-only rendering.
func (m *Manager) Store() *store.Store { return m.store }

// Execute parses and runs one line of input. The book is saved when the
// command changed it.
func (m *Manager) Execute(ctx context.Context, input string) (command.Result, error) {
	log := m.logger.With("request_id", uuid.NewString())
	log.Debug("executing command", "input", input)

	cmd, err := parser.Parse(input)
	if err != nil {
		log.Debug("parse failed", "error", err)
		return command.Result{}, err
	}

	result, err := cmd.Execute(m.store)
	if err != nil {
		log.Debug("command failed", "error", err)
		return command.Result{}, err
	}

	if result.Changed {
		if err := m.Save(ctx); err != nil {
			log.Error("saving address book failed", "error", err)
			return result, err
		}
	}
	log.Info("command executed", "command", fmt.Sprintf("%T", cmd), "changed", result.Changed)
	return result, nil
}

// Save persists the book.
func (m *Manager) Save(ctx context.Context) error {
	if err := m.storage.Save(ctx, m.store); err != nil {
		return fmt.Errorf("could not save address book: %w", err)
	}
	return nil
}

// Close releases the storage.
func (m *Manager) Close() error {
	return m.storage.Close()
}
