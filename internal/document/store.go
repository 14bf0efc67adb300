// Package document handles opaque stored artifacts: uploaded salary slips
// and generated sanction letters. Callers hold resource:// references; only
// this package touches the filesystem.
package document

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	dErrors "nbfc-gateway/pkg/domain-errors"
)

// ErrNotFound keeps resource-level 404s consistent.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "resource not found")

// refScheme prefixes every resource reference handed back to clients.
const refScheme = "resource://"

// Store persists document bytes under opaque filenames.
type Store interface {
	Save(ctx context.Context, filename string, data []byte) (ref string, err error)
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
}

// FSStore writes documents into a flat directory. Filenames are generated
// internally, but Open also guards against path traversal since it serves
// client-supplied names.
type FSStore struct {
	dir string
}

// NewFSStore creates the storage directory if needed.
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FSStore{dir: dir}, nil
}

func (s *FSStore) Save(_ context.Context, filename string, data []byte) (string, error) {
	if err := validateName(filename); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	return refScheme + filename, nil
}

func (s *FSStore) Open(_ context.Context, filename string) (io.ReadCloser, error) {
	if err := validateName(filename); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open document: %w", err)
	}
	return f, nil
}

// validateName rejects anything that could escape the storage directory.
func validateName(filename string) error {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return dErrors.New(dErrors.CodeValidation, "invalid resource name")
	}
	return nil
}
