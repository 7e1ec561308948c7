package book

import (
	"errors"
	"fmt"

	"github.com/hollis-dev/rolodex/internal/person"
)

// ErrIndexOutOfRange indicates a display index outside the listing bounds.
var ErrIndexOutOfRange = errors.New("book: display index out of range")

// displayIndexOffset converts between 1-based display and 0-based storage indices.
const displayIndexOffset = 1

// Listing is the snapshot of persons most recently shown to the user.
// It is the sole addressing scheme for delete-by-index: display index i
// maps to the i-th person of the last list/find result, regardless of
// store mutations since. Only Set replaces its contents.
type Listing struct {
	persons []person.Person
}

// NewListing creates an empty Listing.
func NewListing() *Listing {
	return &Listing{}
}

// Set replaces the listing with a copy of persons, insulating the
// snapshot from later changes to the argument or the store.
func (l *Listing) Set(persons []person.Person) {
	l.persons = append([]person.Person(nil), persons...)
}

// Resolve maps a 1-based display index to the person it was shown
// against. Valid for 1 <= displayIndex <= Len().
func (l *Listing) Resolve(displayIndex int) (person.Person, error) {
	if displayIndex < displayIndexOffset || displayIndex >= len(l.persons)+displayIndexOffset {
		return person.Person{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, displayIndex)
	}
	return l.persons[displayIndex-displayIndexOffset], nil
}

// Len returns the number of persons in the snapshot.
func (l *Listing) Len() int {
	return len(l.persons)
}
