// Package storage persists the contact list as a flat text file,
// one encoded person per line.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hollis-dev/rolodex/internal/person"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrInvalidPath    = errors.New("storage: invalid file path")
	ErrInvalidContent = errors.New("storage: invalid content")
)

// File persists persons to a single text file. Every Save rewrites the
// file wholesale; there is exactly one writer and no concurrent readers,
// so no locking or append log is involved.
type File struct {
	path string
}

// NewFile creates a File for the given path after validating it.
// A path is valid when its parent directory exists, its file name has an
// extension, and any existing entry at the path is a regular file.
func NewFile(path string) (*File, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}
	return &File{path: path}, nil
}

// Path returns the storage file path.
func (f *File) Path() string {
	return f.path
}

// EnsureExists creates an empty storage file if none is present,
// reporting whether it had to create one.
func (f *File) EnsureExists() (created bool, err error) {
	if _, err := os.Stat(f.path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("storage: checking %s: %w", f.path, err)
	}

	if err := os.WriteFile(f.path, nil, 0o644); err != nil {
		return false, fmt.Errorf("storage: creating %s: %w", f.path, err)
	}
	return true, nil
}

// Load reads and decodes every line of the file, in file order.
// Any single undecodable line fails the whole load with ErrInvalidContent;
// there is no partial result.
func (f *File) Load() ([]person.Person, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("storage: reading %s: %w", f.path, err)
	}
	defer func() { _ = file.Close() }()

	var persons []person.Person
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		p, err := person.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidContent, len(persons)+1, err)
		}
		persons = append(persons, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("storage: reading %s: %w", f.path, err)
	}
	return persons, nil
}

// Save rewrites the file with the storage encoding of persons,
// one per line.
func (f *File) Save(persons []person.Person) error {
	var b strings.Builder
	for _, p := range persons {
		b.WriteString(p.EncodeStorage())
		b.WriteByte('\n')
	}

	if err := os.WriteFile(f.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("storage: writing %s: %w", f.path, err)
	}
	return nil
}

// validatePath rejects paths whose parent directory is missing, whose
// file name lacks an extension, or that name an existing non-regular file.
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}

	if parent := filepath.Dir(path); parent != "." {
		info, err := os.Stat(parent)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%w: %q: parent directory does not exist", ErrInvalidPath, path)
		}
	}

	name := filepath.Base(path)
	if strings.LastIndex(name, ".") <= 0 {
		return fmt.Errorf("%w: %q: file name needs an extension", ErrInvalidPath, path)
	}

	if info, err := os.Stat(path); err == nil && !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %q: not a regular file", ErrInvalidPath, path)
	}
	return nil
}
