package store

import (
	"slices"

	"github.com/h0rv/projbook/internal/domain"
)

// entity is anything held in a collection.
type entity interface {
	comparable
	ID() int
}

// collection is an insertion-ordered list of entities with weak-identity
// uniqueness. Lookups are linear scans; the book is small.
type collection[T entity] struct {
	kind  string // "client", "project" or "issue", used in messages
	items []T
	same  func(a, b T) bool
}

func newCollection[T entity](kind string, same func(a, b T) bool) *collection[T] {
	return &collection[T]{kind: kind, same: same}
}

func (c *collection[T]) duplicate() error {
	return &domain.DuplicateError{Message: "This " + c.kind + " already exists in the address book"}
}

func (c *collection[T]) notFound() error {
	return &domain.NotFoundError{Message: "This " + c.kind + " id does not exist"}
}

// contains reports whether an entity with the same weak identity is held.
func (c *collection[T]) contains(item T) bool {
	return slices.ContainsFunc(c.items, func(x T) bool { return c.same(x, item) })
}

func (c *collection[T]) add(item T) error {
	if c.contains(item) {
		return c.duplicate()
	}
	c.items = append(c.items, item)
	return nil
}

func (c *collection[T]) get(id int) (T, error) {
	for _, x := range c.items {
		if x.ID() == id {
			return x, nil
		}
	}
	var zero T
	return zero, c.notFound()
}

func (c *collection[T]) containsID(id int) bool {
	return slices.ContainsFunc(c.items, func(x T) bool { return x.ID() == id })
}

func (c *collection[T]) remove(item T) error {
	i := slices.Index(c.items, item)
	if i < 0 {
		return c.notFound()
	}
	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

// replace swaps old for replacement in place. replacement may share old's
// identity but not another entity's.
func (c *collection[T]) replace(old, replacement T) error {
	i := slices.Index(c.items, old)
	if i < 0 {
		return c.notFound()
	}
	for j, x := range c.items {
		if j != i && c.same(x, replacement) {
			return c.duplicate()
		}
	}
	c.items[i] = replacement
	return nil
}

// nextID returns max(ids)+1, or 1 for an empty collection.
func (c *collection[T]) nextID() int {
	highest := 0
	for _, x := range c.items {
		highest = max(highest, x.ID())
	}
	return highest + 1
}

// setAll replaces the contents, rejecting lists with duplicate identities.
func (c *collection[T]) setAll(items []T) error {
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if c.same(items[i], items[j]) {
				return c.duplicate()
			}
		}
	}
	c.items = slices.Clone(items)
	return nil
}

func (c *collection[T]) list() []T {
	return slices.Clone(c.items)
}

func (c *collection[T]) filter(keep func(T) bool) []T {
	var out []T
	for _, x := range c.items {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

func (c *collection[T]) sortByID() {
	slices.SortStableFunc(c.items, func(a, b T) int { return a.ID() - b.ID() })
}
