// Package person defines the contact value type and its reversible text codec.
package person

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Data prefixes marking the phone and email fields in encoded person text.
const (
	PrefixPhone = "p/"
	PrefixEmail = "e/"
)

// Sentinel errors for caller-checkable decode failures.
var (
	ErrUnextractable = errors.New("person: cannot extract name, phone and email")
	ErrInvalidName   = errors.New("person: name must be a non-empty mix of word characters and whitespace")
	ErrInvalidPhone  = errors.New("person: phone must be a non-empty digit sequence")
	ErrInvalidEmail  = errors.New("person: email must look like local@domain.tld")
)

// Field validation patterns. Anchored: the whole field must match.
var (
	namePattern  = regexp.MustCompile(`^[\w\s]+$`)
	phonePattern = regexp.MustCompile(`^\d+$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	// anyPrefix splits encoded person text into its three field segments.
	anyPrefix = regexp.MustCompile(PrefixPhone + "|" + PrefixEmail)
)

// Person is an immutable contact record. Two persons are the same contact
// exactly when all three fields are equal; there is no hidden identity.
type Person struct {
	Name  string
	Phone string
	Email string
}

// New validates the fields and returns the resulting Person.
func New(name, phone, email string) (Person, error) {
	p := Person{Name: name, Phone: phone, Email: email}
	if err := p.validate(); err != nil {
		return Person{}, err
	}
	return p, nil
}

// Decode parses encoded person text of the form "NAME p/PHONE e/EMAIL".
// The p/ and e/ fields may appear in either order; the name is whatever
// precedes the first prefix. The same grammar serves command arguments
// and storage lines.
func Decode(encoded string) (Person, error) {
	if !extractable(encoded) {
		return Person{}, fmt.Errorf("%w: %q", ErrUnextractable, encoded)
	}

	phoneIdx := strings.Index(encoded, PrefixPhone)
	emailIdx := strings.Index(encoded, PrefixEmail)
	if phoneIdx < 0 || emailIdx < 0 {
		// Three segments can also arise from one prefix occurring twice.
		return Person{}, fmt.Errorf("%w: %q", ErrUnextractable, encoded)
	}

	return New(
		extractName(encoded, phoneIdx, emailIdx),
		extractField(encoded, PrefixPhone, phoneIdx, emailIdx),
		extractField(encoded, PrefixEmail, emailIdx, phoneIdx),
	)
}

// EncodeStorage returns the canonical storage line for p.
// Decode(p.EncodeStorage()) yields p for any valid Person.
func (p Person) EncodeStorage() string {
	return fmt.Sprintf("%s %s%s %s%s", p.Name, PrefixPhone, p.Phone, PrefixEmail, p.Email)
}

// String returns the display form, e.g.
// "Betsy Choo  Phone Number: 222222  Email: benchoo@nus.edu.sg".
// Display-only; never re-parsed.
func (p Person) String() string {
	return fmt.Sprintf("%s  Phone Number: %s  Email: %s", p.Name, p.Phone, p.Email)
}

// NameWords returns the whitespace-separated words of the person's name.
func (p Person) NameWords() []string {
	return strings.Fields(p.Name)
}

func (p Person) validate() error {
	if !namePattern.MatchString(p.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, p.Name)
	}
	if !phonePattern.MatchString(p.Phone) {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, p.Phone)
	}
	if !emailPattern.MatchString(p.Email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, p.Email)
	}
	return nil
}

// extractable reports whether encoded splits on the data prefixes into
// exactly three non-empty segments (name, then two field values).
func extractable(encoded string) bool {
	segments := anyPrefix.Split(strings.TrimSpace(encoded), -1)
	if len(segments) != 3 {
		return false
	}
	for _, seg := range segments {
		if seg == "" {
			return false
		}
	}
	return true
}

// extractName returns the leading substring before the first data prefix.
func extractName(encoded string, phoneIdx, emailIdx int) string {
	first := phoneIdx
	if emailIdx < first {
		first = emailIdx
	}
	return strings.TrimSpace(encoded[:first])
}

// extractField returns the value of the field whose prefix starts at ownIdx.
// The segment runs to the other field's prefix, or to end of string when
// this field comes last.
func extractField(encoded, prefix string, ownIdx, otherIdx int) string {
	var segment string
	if ownIdx > otherIdx {
		segment = encoded[ownIdx:]
	} else {
		segment = encoded[ownIdx:otherIdx]
	}
	return strings.TrimPrefix(strings.TrimSpace(segment), prefix)
}
