// Package snapshot persists full JSON snapshots of the store state on disk.
// Each key maps to one file; every save rewrites the whole file, so the
// newest snapshot always wins and a partial write never replaces a good one.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Snapshot keys. One file per key under the data directory.
const (
	ProductsKey  = "blak_products"
	OrdersKey    = "blak_orders"
	AnalyticsKey = "blak_analytics"
)

// ErrNoSnapshot is returned by Load when no file exists for the key yet.
var ErrNoSnapshot = errors.New("no snapshot")

type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Save writes v as the new snapshot for key. The file is written to a
// temporary path first and renamed into place so readers never observe a
// half-written snapshot.
func (s *Store) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s snapshot: %w", key, err)
	}
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s snapshot: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s snapshot: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s snapshot: %w", key, err)
	}
	return nil
}

// Load reads the snapshot for key into v. ErrNoSnapshot means nothing has
// been saved under the key yet.
func (s *Store) Load(key string, v any) error {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNoSnapshot
	}
	if err != nil {
		return fmt.Errorf("read %s snapshot: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s snapshot: %w", key, err)
	}
	return nil
}
