package output

import (
	"context"

	"financement/internal/domain/entities"
)

// DatasetSource retrieves the current dataset, typically over the network.
type DatasetSource interface {
	Fetch(ctx context.Context) (*entities.CampaignDataset, error)
}

// DatasetCache keeps the last dataset that was fetched successfully.
// Load returns domain.ErrNoSnapshot when nothing was saved yet.
type DatasetCache interface {
	Load(ctx context.Context) (*entities.CampaignDataset, error)
	Save(ctx context.Context, dataset *entities.CampaignDataset) error
}
