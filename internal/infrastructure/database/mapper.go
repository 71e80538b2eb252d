package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"financement/internal/domain/entities"
)

// snapshotRow mirrors a dataset_snapshots row.
type snapshotRow struct {
	ID        int64
	Payload   []byte
	FetchedAt pgtype.Timestamptz
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func snapshotToDomain(row snapshotRow) (*entities.CampaignDataset, error) {
	var dataset entities.CampaignDataset
	if err := json.Unmarshal(row.Payload, &dataset); err != nil {
		return nil, fmt.Errorf("decode snapshot %d: %w", row.ID, err)
	}
	return &dataset, nil
}
