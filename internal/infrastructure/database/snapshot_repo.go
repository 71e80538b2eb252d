package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"financement/internal/domain"
	"financement/internal/domain/entities"
	"financement/internal/ports/output"
)

// DefaultSnapshotRetention is the number of snapshots kept after each Save.
const DefaultSnapshotRetention = 30

const (
	latestSnapshotSQL = `SELECT id, payload, fetched_at FROM dataset_snapshots ORDER BY id DESC LIMIT 1`
	insertSnapshotSQL = `INSERT INTO dataset_snapshots (payload) VALUES ($1)`
	pruneSnapshotsSQL = `DELETE FROM dataset_snapshots
WHERE id NOT IN (SELECT id FROM dataset_snapshots ORDER BY id DESC LIMIT $1)`
)

var _ output.DatasetCache = (*SnapshotRepository)(nil)

// SnapshotRepository keeps fetched datasets in PostgreSQL. It serves the same
// Load/Save contract as the file cache for deployments that share state
// between several instances.
type SnapshotRepository struct {
	pool      *pgxpool.Pool
	retention int
	logger    *log.Logger
}

func NewSnapshotRepository(pool *pgxpool.Pool, logger *log.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		pool:      pool,
		retention: DefaultSnapshotRetention,
		logger:    logger,
	}
}

func (r *SnapshotRepository) Load(ctx context.Context) (*entities.CampaignDataset, error) {
	var row snapshotRow
	err := r.pool.QueryRow(ctx, latestSnapshotSQL).Scan(&row.ID, &row.Payload, &row.FetchedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("get latest snapshot: %w", err)
	}
	r.logger.Debug("snapshot chargé", "id", row.ID, "fetched_at", pgtypeTimestamptzToTime(row.FetchedAt))
	return snapshotToDomain(row)
}

func (r *SnapshotRepository) Save(ctx context.Context, dataset *entities.CampaignDataset) error {
	payload, err := json.Marshal(dataset)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if _, err := r.pool.Exec(ctx, insertSnapshotSQL, payload); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	if _, err := r.pool.Exec(ctx, pruneSnapshotsSQL, r.retention); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
