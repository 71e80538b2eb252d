package application

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"financement/internal/domain"
	"financement/internal/domain/entities"
	"financement/internal/ports/input"
	"financement/internal/ports/output"
)

var _ input.PanelUseCase = (*PanelService)(nil)

type PanelService struct {
	source output.DatasetSource
	cache  output.DatasetCache
	labels output.Labels
	logger *log.Logger
}

// NewPanelService wires the panel use case. cache may be nil.
func NewPanelService(
	source output.DatasetSource,
	cache output.DatasetCache,
	labels output.Labels,
	logger *log.Logger,
) *PanelService {
	return &PanelService{
		source: source,
		cache:  cache,
		labels: labels,
		logger: logger,
	}
}

// LoadDataset fetches the dataset, saving it to the cache on success and
// falling back to the last cached one on failure. It returns nil when no
// data is available at all; errors are logged, never returned.
func (s *PanelService) LoadDataset(ctx context.Context) *entities.CampaignDataset {
	dataset, err := s.source.Fetch(ctx)
	if err == nil {
		if s.cache != nil {
			if err := s.cache.Save(ctx, dataset); err != nil {
				s.logger.Warn("⚠️ Mise en cache impossible", "err", err)
			}
		}
		return dataset
	}

	s.logger.Warn("⚠️ Erreur réseau, utilisation du cache", "err", err)
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNoSnapshot) {
			s.logger.Error("❌ Lecture du cache impossible", "err", err)
		}
		return nil
	}
	return cached
}

func (s *PanelService) BuildPanel(ctx context.Context, size domain.Size, localeTags []string) *entities.Panel {
	locale := domain.ResolveLocale(localeTags)
	dataset := s.LoadDataset(ctx)
	return Present(dataset, locale, size, s.labels.Labels(locale))
}
