// Package storage reads and writes the wedlinker data file.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"

	"github.com/calvinalkan/wedlinker/internal/model"
)

const (
	dirPerms  = 0o750
	filePerms = 0o600
)

// ErrCorruptData is returned when the data file cannot be turned into a
// consistent book. The file is never rewritten in that case.
var ErrCorruptData = errors.New("corrupt data file")

// Store is a data file on disk.
type Store struct {
	path string
	log  *slog.Logger
}

// New returns a store for the data file at path.
func New(path string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Store{path: path, log: log}
}

// Path returns the data file path.
func (s *Store) Path() string { return s.path }

// Load reads the data file. A missing file is not an error: exists is
// false and the book is nil.
func (s *Store) Load() (*model.Book, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("data file missing", "path", s.path)

		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("reading data file: %w", err)
	}

	b, err := Decode(data, s.log)
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", s.path, err)
	}

	s.log.Debug("data file loaded", "path", s.path, "persons", len(b.Persons()), "tasks", len(b.Tasks()))

	return b, true, nil
}

// Save writes b over the data file atomically, creating parent directories.
func (s *Store) Save(b *model.Book) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), dirPerms); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing data file: %w", err)
	}

	// atomic.WriteFile keeps the temp file's mode on first write.
	if err := os.Chmod(s.path, filePerms); err != nil {
		return fmt.Errorf("setting data file permissions: %w", err)
	}

	s.log.Debug("data file saved", "path", s.path, "revision", b.Revision())

	return nil
}

// Decode parses a data document. Comments and trailing commas are accepted.
// Every failure wraps [ErrCorruptData]; the returned book passes
// [model.Book.Check].
func Decode(data []byte, log *slog.Logger) (*model.Book, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing: %w", ErrCorruptData, err)
	}

	var doc document

	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: parsing: %w", ErrCorruptData, err)
	}

	b, err := toBook(&doc, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}

	return b, nil
}

// Encode renders b as an indented data document.
func Encode(b *model.Book) ([]byte, error) {
	data, err := json.MarshalIndent(fromBook(b), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding data: %w", err)
	}

	return append(data, '\n'), nil
}
