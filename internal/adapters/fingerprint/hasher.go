// Package fingerprint computes stable digests of install steps.
package fingerprint

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pipstep/internal/core/domain"
	"go.trai.ch/pipstep/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher fingerprints install steps with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes the package identity, the argument vector and, when it
// can be read, the installer binary. Upgrading the installer in place
// therefore changes the fingerprint of every step that uses it.
func (h *Hasher) Fingerprint(step *domain.InstallStep) string {
	hasher := xxhash.New()

	writeField(hasher, step.Spec.Name())
	writeField(hasher, step.Spec.RegistryName())
	writeField(hasher, step.Spec.Version())
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, arg := range step.Args {
		writeField(hasher, arg)
	}
	_, _ = hasher.Write([]byte{0})

	if sum, err := h.ComputeFileHash(step.InstallerPath); err == nil {
		_ = binary.Write(hasher, binary.LittleEndian, sum)
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, err
	}
	return hasher.Sum64(), nil
}

func writeField(hasher *xxhash.Digest, s string) {
	_, _ = hasher.WriteString(s)
	_, _ = hasher.Write([]byte{0})
}
