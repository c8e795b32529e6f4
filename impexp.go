package holdem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to handle the import/export format.
// The export is the persisted state, pretty printed, so that a backup is
// human readable and can be imported back as is.

// ErrInvalidImport is returned when an import is rejected.
var ErrInvalidImport = errors.New("invalid import")

// requiredImportPaths are the properties a backup must have to be accepted.
var requiredImportPaths = []string{"$.sessions", "$.accounts"}

// ExportFilename is the suggested name of a backup file.
const ExportFilename = "holdem-tracker-backup.json"

// Export writes the store to w in the import/export format.
func Export(w io.Writer, s *Store) error {
	data, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode backup: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write backup: %w", err)
	}
	return nil
}

// ParseImport validates a backup and returns its state.
//
// The backup must be a JSON object with at least the "sessions" and
// "accounts" properties, any other missing property takes its default value.
func ParseImport(data []byte) (*State, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: not a json document: %v", ErrInvalidImport, err)
	}
	for _, path := range requiredImportPaths {
		if _, err := jsonpath.Get(path, doc); err != nil {
			return nil, fmt.Errorf("%w: missing %q", ErrInvalidImport, path)
		}
	}
	st, err := DecodeState(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	return st, nil
}

// Import replaces the store content with the backup read from r.
// On error the store is left untouched.
func (s *Store) Import(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: cannot read backup: %v", ErrInvalidImport, err)
	}
	st, err := ParseImport(data)
	if err != nil {
		return err
	}
	s.Replace(st)
	return nil
}
