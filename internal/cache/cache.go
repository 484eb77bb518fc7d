// Package cache provides a content-addressed on-disk cache for fetched API
// responses, compressed with LZ4. It spares repeated commit-history fetches
// across consecutive runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pierrec/lz4/v4"
)

const (
	dirPerm = 0o750

	// entryExtension marks cache entries on disk.
	entryExtension = ".lz4"
)

// Store is a directory-backed cache keyed by opaque strings. A nil Store is
// valid and behaves as a disabled cache. Entries expire after maxAge so the
// upstream data is refetched eventually; the cached responses (commit
// history, repository lists) do go stale.
type Store struct {
	dir    string
	maxAge time.Duration
}

// New creates (or reuses) a cache directory with the given entry lifetime.
// An empty dir disables caching and returns a nil store. A non-positive
// maxAge keeps entries forever.
func New(dir string, maxAge time.Duration) (*Store, error) {
	if dir == "" {
		return nil, nil //nolint:nilnil // nil store means caching disabled.
	}

	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	return &Store{dir: dir, maxAge: maxAge}, nil
}

// Get returns the cached bytes for key, reporting whether the entry exists,
// is within its lifetime and decompressed cleanly. Corrupt entries are
// treated as absent; expired entries are removed.
func (s *Store) Get(key string) ([]byte, bool) {
	if s == nil {
		return nil, false
	}

	file, err := os.Open(s.path(key))
	if err != nil {
		return nil, false
	}
	defer file.Close()

	if s.maxAge > 0 {
		info, statErr := file.Stat()
		if statErr != nil {
			return nil, false
		}

		if time.Since(info.ModTime()) > s.maxAge {
			_ = os.Remove(s.path(key))

			return nil, false
		}
	}

	data, err := io.ReadAll(lz4.NewReader(file))
	if err != nil {
		return nil, false
	}

	return data, true
}

// Put stores bytes under key, compressing with LZ4. The write goes through a
// temp file and rename so readers never observe partial entries.
func (s *Store) Put(key string, data []byte) error {
	if s == nil {
		return nil
	}

	tmp, err := os.CreateTemp(s.dir, "entry-*")
	if err != nil {
		return fmt.Errorf("create cache temp file: %w", err)
	}

	writer := lz4.NewWriter(tmp)

	_, writeErr := writer.Write(data)
	if writeErr == nil {
		writeErr = writer.Close()
	}

	closeErr := tmp.Close()

	if writeErr != nil || closeErr != nil {
		_ = os.Remove(tmp.Name())

		if writeErr != nil {
			return fmt.Errorf("write cache entry: %w", writeErr)
		}

		return fmt.Errorf("close cache entry: %w", closeErr)
	}

	renameErr := os.Rename(tmp.Name(), s.path(key))
	if renameErr != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("publish cache entry: %w", renameErr)
	}

	return nil
}

// path maps a key to its on-disk location via SHA-256.
func (s *Store) path(key string) string {
	sum := sha256.Sum256([]byte(key))

	return filepath.Join(s.dir, hex.EncodeToString(sum[:])+entryExtension)
}
