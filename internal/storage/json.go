package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/h0rv/projbook/internal/domain"
	"github.com/h0rv/projbook/internal/store"
)

// Storage loads and saves a whole address book.
type Storage interface {
	Load(ctx context.Context) (*store.Store, error)
	Save(ctx context.Context, s *store.Store) error
	Close() error
}

// JSONStorage keeps the address book in a single JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage returns a storage backed by the JSON file at path. The file
// and its directory are created on first save.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the file the book is stored in.
func (js *JSONStorage) Path() string { return js.path }

// Load reads the book. A missing file yields an empty store.
func (js *JSONStorage) Load(ctx context.Context) (*store.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(js.path)
	if errors.Is(err, fs.ErrNotExist) {
		return store.New(), nil
	}
	if err != nil {
		return nil, &domain.PersistenceError{Message: "reading " + js.path, Err: err}
	}
	defer f.Close()
	return DecodeJSON(f)
}

// DecodeJSON reads a book in the JSON layout from r.
func DecodeJSON(r io.Reader) (*store.Store, error) {
	var b Book
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, &domain.PersistenceError{Message: "malformed address book", Err: err}
	}
	return FromBook(b)
}

// EncodeJSON writes the book in the JSON layout to w.
func EncodeJSON(w io.Writer, s *store.Store) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToBook(s))
}

// Save writes the book atomically: a temp file is written and synced, then
// renamed over the target.
func (js *JSONStorage) Save(ctx context.Context, s *store.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(js.path), 0o755); err != nil {
		return &domain.PersistenceError{Message: "creating data directory", Err: err}
	}
	if err := atomicWriteJSON(js.path, s); err != nil {
		return &domain.PersistenceError{Message: "writing " + js.path, Err: err}
	}
	return nil
}

func (js *JSONStorage) Close() error { return nil }

func atomicWriteJSON(path string, s *store.Store) error {
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("generating random suffix: %w", err)
	}
	tmp := path + ".tmp." + hex.EncodeToString(randBytes)

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if err := EncodeJSON(f, s); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
