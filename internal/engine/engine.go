// Package engine dispatches one command per input line against the
// contact store and produces a feedback string for the session layer.
package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/hollis-dev/rolodex/internal/book"
	"github.com/hollis-dev/rolodex/internal/person"
)

// ErrExitRequested signals that the user asked to terminate the session.
var ErrExitRequested = errors.New("engine: exit requested")

// Engine executes commands against the owned contact state. It holds
// exclusive mutable access to both the store and the listing snapshot;
// no other component touches either collection directly.
//
// Each command is atomic: it fully parses, mutates, persists, and
// reports before the next line is read. Recoverable problems (malformed
// person text, bad index, unknown command) become feedback strings with
// a nil error; a persistence failure is returned as an error and is
// fatal to the caller.
type Engine struct {
	store   *book.Store
	listing *book.Listing
}

// New creates an Engine over the given store and listing snapshot.
func New(store *book.Store, listing *book.Listing) *Engine {
	return &Engine{store: store, listing: listing}
}

// Execute runs the command on one already-trimmed, non-empty input line
// and returns the feedback to show the user.
func (e *Engine) Execute(line string) (string, error) {
	word, args := splitWordAndArgs(line)
	switch word {
	case wordAdd:
		return e.executeAdd(args)
	case wordFind:
		return e.executeFind(args), nil
	case wordList:
		return e.executeList(), nil
	case wordDelete:
		return e.executeDelete(args)
	case wordClear:
		return e.executeClear()
	case wordHelp:
		return usageAll(), nil
	case wordExit:
		return "", ErrExitRequested
	default:
		return fmt.Sprintf(msgInvalidCommand, word, usageAll()), nil
	}
}

// splitWordAndArgs splits a raw input line into the command word and the
// remaining argument string. Inner whitespace of the arguments is kept
// verbatim; only the separator run and outer whitespace are removed.
func splitWordAndArgs(line string) (word, args string) {
	trimmed := strings.TrimSpace(line)
	i := strings.IndexFunc(trimmed, unicode.IsSpace)
	if i < 0 {
		return trimmed, ""
	}
	return trimmed[:i], strings.TrimSpace(trimmed[i:])
}

// executeAdd decodes the argument string as a person and appends it to
// the store.
func (e *Engine) executeAdd(args string) (string, error) {
	p, err := person.Decode(args)
	if err != nil {
		return fmt.Sprintf(msgInvalidCommand, wordAdd, usageFor(wordAdd)), nil
	}

	if err := e.store.Add(p); err != nil {
		return "", err
	}
	return fmt.Sprintf(msgAdded, p.Name, p.Phone, p.Email), nil
}

// executeFind lists every person whose name contains any of the keyword
// arguments and replaces the listing snapshot with the result.
// An empty result is still a success.
func (e *Engine) executeFind(args string) string {
	found := e.store.FindByName(strings.Fields(args))
	e.listing.Set(found)
	return renderListing(found)
}

// executeList shows the full store and replaces the listing snapshot.
func (e *Engine) executeList() string {
	all := e.store.All()
	e.listing.Set(all)
	return renderListing(all)
}

// executeDelete removes the person at the given 1-based display index of
// the last shown listing. A non-numeric or < 1 argument is a format
// error; a well-formed index beyond the listing bounds is an index
// error; a resolved person no longer in the store is a not-found error.
// Each yields distinct feedback.
func (e *Engine) executeDelete(args string) (string, error) {
	index, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil || index < 1 {
		return fmt.Sprintf(msgInvalidCommand, wordDelete, usageFor(wordDelete)), nil
	}

	target, err := e.listing.Resolve(index)
	if err != nil {
		return msgInvalidDisplayedIdx, nil
	}

	removed, err := e.store.RemoveExact(target)
	if err != nil {
		return "", err
	}
	if !removed {
		return msgPersonNotInBook, nil
	}
	return fmt.Sprintf(msgDeleted, target), nil
}

// executeClear empties the store.
func (e *Engine) executeClear() (string, error) {
	if err := e.store.Clear(); err != nil {
		return "", err
	}
	return msgCleared, nil
}

// renderListing returns the 1-indexed display text for persons followed
// by the found-count summary line.
func renderListing(persons []person.Person) string {
	var b strings.Builder
	for i, p := range persons {
		fmt.Fprintf(&b, displayIndexedListEntry, i+1, p)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, msgPersonsFound, len(persons))
	return b.String()
}
