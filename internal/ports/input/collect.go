package input

import (
	"context"
	"time"

	"financement/internal/domain/entities"
)

type CollectUseCase interface {
	Collect(ctx context.Context, now time.Time) (*entities.CampaignDataset, error)
}
