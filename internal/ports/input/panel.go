package input

import (
	"context"

	"financement/internal/domain"
	"financement/internal/domain/entities"
)

type PanelUseCase interface {
	// BuildPanel never fails: missing data yields the no-data panel.
	BuildPanel(ctx context.Context, size domain.Size, localeTags []string) *entities.Panel
	LoadDataset(ctx context.Context) *entities.CampaignDataset
}
