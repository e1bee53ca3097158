// Package repository holds the Postgres-backed persistence for the catalog.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/inventory-hub/internal/model"
	"github.com/tuanvumaihuynh/inventory-hub/internal/storage/db"
)

// snapshotRowID is the primary key of the only snapshot row.
const snapshotRowID = 1

const (
	loadSnapshotSQL = `SELECT products FROM catalog_snapshots WHERE id = $1`

	flushSnapshotSQL = `
INSERT INTO catalog_snapshots (id, products, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (id) DO UPDATE
SET products = EXCLUDED.products, updated_at = EXCLUDED.updated_at`
)

// SnapshotRepository keeps the whole catalog as a single JSONB row, the
// same layout the file store writes to disk.
type SnapshotRepository struct {
	db db.DB
}

func NewSnapshotRepository(db db.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Load returns the stored catalog, or an empty one if nothing was flushed yet.
func (r *SnapshotRepository) Load(ctx context.Context) ([]model.Product, error) {
	var data []byte
	err := r.db.QueryRow(ctx, loadSnapshotSQL, snapshotRowID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return []model.Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query catalog snapshot: %w", err)
	}

	products := []model.Product{}
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog snapshot: %w", err)
	}

	return products, nil
}

// Flush replaces the stored catalog in one statement.
func (r *SnapshotRepository) Flush(ctx context.Context, products []model.Product) error {
	if products == nil {
		products = []model.Product{}
	}

	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode catalog snapshot: %w", err)
	}

	if _, err := r.db.Exec(ctx, flushSnapshotSQL, snapshotRowID, data); err != nil {
		return fmt.Errorf("upsert catalog snapshot: %w", err)
	}

	return nil
}
