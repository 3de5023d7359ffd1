// Package cas implements the on-disk install receipt store.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/pipstep/internal/core/domain"
	"go.trai.ch/pipstep/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDir is the receipt directory, relative to the project file.
const DefaultDir = ".pipstep/receipts"

var (
	_ ports.ReceiptStore        = (*Store)(nil)
	_ ports.ReceiptStoreFactory = (*Factory)(nil)
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// Store implements ports.ReceiptStore with one JSON file per package.
// Files are named by the SHA-256 of the package name so that any name is a
// safe filename.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// NewStore creates a receipt store rooted at dir. The directory is created on
// the first Put.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, zerr.With(domain.ErrInvalidInput, "field", "receipt_dir")
	}
	return &Store{dir: filepath.Clean(dir)}, nil
}

// Factory opens one Store per project, under DefaultDir relative to the
// project file's directory.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open implements ports.ReceiptStoreFactory.
func (f *Factory) Open(projectDir string) (ports.ReceiptStore, error) {
	return NewStore(filepath.Join(projectDir, DefaultDir))
}

func (s *Store) pathFor(pkg string) string {
	sum := sha256.Sum256([]byte(pkg))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:])+".json")
}

// Get retrieves the last receipt for a package.
// Returns nil, nil if the package has no receipt.
func (s *Store) Get(pkg string) (*domain.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.pathFor(pkg)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from a hash
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrReceiptReadFailed, zerr.With(zerr.Wrap(err, "failed to open receipt"), "package", pkg))
	}

	var receipt domain.Receipt
	if err := json.Unmarshal(data, &receipt); err != nil {
		return nil, errors.Join(domain.ErrReceiptReadFailed, zerr.With(zerr.Wrap(err, "failed to unmarshal receipt"), "package", pkg))
	}
	return &receipt, nil
}

// Put stores the receipt, replacing any previous one for the same package.
func (s *Store) Put(receipt domain.Receipt) error {
	data, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal receipt")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create receipt directory"), "dir", s.dir)
	}

	path := s.pathFor(receipt.Package)
	tmp, err := os.CreateTemp(s.dir, ".receipt-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary receipt")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write receipt")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write receipt")
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return zerr.Wrap(err, "failed to write receipt")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write receipt"), "package", receipt.Package)
	}
	return nil
}
