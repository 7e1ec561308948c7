// Package book holds the owned in-memory contact state: the full ordered
// store and the last-displayed listing snapshot used for index addressing.
package book

import (
	"strings"

	"github.com/hollis-dev/rolodex/internal/person"
)

// PersistFunc receives the full store contents after every mutation.
// A non-nil error aborts the mutation's caller; the store itself has
// already applied the change, matching the write-through model where a
// failed write is fatal to the process rather than rolled back.
type PersistFunc func(persons []person.Person) error

// Store is the authoritative ordered collection of persons.
// Insertion order is preserved and value duplicates are permitted.
type Store struct {
	persons []person.Person
	persist PersistFunc
}

// NewStore creates an empty Store. persist is invoked with the full
// contents after every mutation; pass nil to disable persistence.
func NewStore(persist PersistFunc) *Store {
	return &Store{persist: persist}
}

// LoadAll replaces the entire store contents without persisting.
// Used only at startup with data already read from storage.
func (s *Store) LoadAll(persons []person.Person) {
	s.persons = append([]person.Person(nil), persons...)
}

// Add appends p to the end of the store and persists.
func (s *Store) Add(p person.Person) error {
	s.persons = append(s.persons, p)
	return s.flush()
}

// RemoveExact removes the first person equal by value to p, reporting
// whether anything was removed. Deletion is addressed through a listing
// snapshot, so matching is by value; with duplicate-valued persons the
// first value match wins, deliberately.
// Persists only when something was removed.
func (s *Store) RemoveExact(p person.Person) (bool, error) {
	for i, candidate := range s.persons {
		if candidate == p {
			s.persons = append(s.persons[:i], s.persons[i+1:]...)
			return true, s.flush()
		}
	}
	return false, nil
}

// Clear empties the store and persists unconditionally.
func (s *Store) Clear() error {
	s.persons = nil
	return s.flush()
}

// All returns a copy of the full contents in insertion order.
func (s *Store) All() []person.Person {
	return append([]person.Person(nil), s.persons...)
}

// Len returns the number of persons in the store.
func (s *Store) Len() int {
	return len(s.persons)
}

// FindByName returns, in store order, every person whose name shares at
// least one whole word with keywords, compared case-insensitively.
// An empty keyword set matches nothing.
func (s *Store) FindByName(keywords []string) []person.Person {
	wanted := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		wanted[strings.ToLower(kw)] = struct{}{}
	}

	var matched []person.Person
	for _, p := range s.persons {
		for _, word := range p.NameWords() {
			if _, ok := wanted[strings.ToLower(word)]; ok {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

func (s *Store) flush() error {
	if s.persist == nil {
		return nil
	}
	return s.persist(s.All())
}
