// Package checksum decides whether a package's compiled program changed
// since the last build, by comparing content digests.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// Sum returns the hex digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Comparison is the outcome of comparing a current checksum against the
// stored one. Absence of a stored checksum is its own state rather than a
// boolean: the "absent means changed" policy belongs to the caller.
type Comparison int

const (
	Absent Comparison = iota
	Equal
	Different
)

func (c Comparison) String() string {
	switch c {
	case Absent:
		return "absent"
	case Equal:
		return "equal"
	case Different:
		return "different"
	}
	return fmt.Sprintf("Comparison(%d)", int(c))
}

// Changed reports whether downstream artifacts need regeneration. A first
// build, with no stored checksum, always counts as changed.
func (c Comparison) Changed() bool {
	return c != Equal
}

// Store persists the most recent checksum of one package. It holds no state
// beyond the file path; every call goes to the filesystem.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Read returns the stored checksum, or ok=false when none was ever written.
func (s *Store) Read() (sum string, ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(string(data)), true, nil
}

// Compare reads the stored checksum and compares it against current.
func (s *Store) Compare(current string) (Comparison, error) {
	previous, ok, err := s.Read()
	if err != nil {
		return Absent, err
	}
	if !ok {
		return Absent, nil
	}
	if previous == current {
		return Equal, nil
	}
	return Different, nil
}

// Write overwrites the stored checksum.
func (s *Store) Write(sum string) error {
	return os.WriteFile(s.path, []byte(sum), 0o644)
}
