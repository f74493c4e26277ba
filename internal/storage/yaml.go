package storage

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/h0rv/projbook/internal/domain"
	"github.com/h0rv/projbook/internal/store"
)

// ExportYAML writes the book to w as YAML, using the same records as the
// JSON layout.
func ExportYAML(w io.Writer, s *store.Store) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToBook(s)); err != nil {
		return err
	}
	return enc.Close()
}

// ImportYAML reads a book written by ExportYAML.
func ImportYAML(r io.Reader) (*store.Store, error) {
	var b Book
	if err := yaml.NewDecoder(r).Decode(&b); err != nil {
		return nil, &domain.PersistenceError{Message: "malformed address book", Err: err}
	}
	return FromBook(b)
}
