// Package file persists catalog snapshots as a JSON array on local disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio"

	"github.com/tuanvumaihuynh/inventory-hub/internal/model"
)

// Store reads and writes the whole catalog at path. Every Flush rewrites
// the full snapshot, so cost grows with catalog size.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted catalog. A missing file is the first-run case
// and yields an empty catalog.
func (s *Store) Load(_ context.Context) ([]model.Product, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}

	products := []model.Product{}
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", s.path, err)
	}

	return products, nil
}

// Flush atomically replaces the snapshot: readers see either the previous
// file or the new one, never a partial write.
func (s *Store) Flush(ctx context.Context, products []model.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if products == nil {
		products = []model.Product{}
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	if err := renameio.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", s.path, err)
	}

	return nil
}
