package application

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"financement/internal/domain"
	"financement/internal/domain/entities"
)

type stubSource struct {
	dataset *entities.CampaignDataset
	err     error
}

func (s *stubSource) Fetch(context.Context) (*entities.CampaignDataset, error) {
	return s.dataset, s.err
}

type stubCache struct {
	dataset *entities.CampaignDataset
	loadErr error
	saveErr error
	saved   *entities.CampaignDataset
}

func (c *stubCache) Load(context.Context) (*entities.CampaignDataset, error) {
	return c.dataset, c.loadErr
}

func (c *stubCache) Save(_ context.Context, d *entities.CampaignDataset) error {
	c.saved = d
	return c.saveErr
}

var errNetwork = errors.New("dial tcp: connection refused")

func newPanelService(source *stubSource, cache *stubCache) *PanelService {
	if cache == nil {
		return NewPanelService(source, nil, translator, log.New(io.Discard))
	}
	return NewPanelService(source, cache, translator, log.New(io.Discard))
}

func TestLoadDataset(t *testing.T) {
	fresh := &entities.CampaignDataset{LastUpdate: "2026-02-06 11:38"}
	cached := &entities.CampaignDataset{LastUpdate: "2026-02-04 08:00"}

	tests := []struct {
		name      string
		source    *stubSource
		cache     *stubCache
		want      *entities.CampaignDataset
		wantSaved bool
	}{
		{
			name:      "fresh data is cached",
			source:    &stubSource{dataset: fresh},
			cache:     &stubCache{},
			want:      fresh,
			wantSaved: true,
		},
		{
			name:      "cache write failure is ignored",
			source:    &stubSource{dataset: fresh},
			cache:     &stubCache{saveErr: errors.New("disk full")},
			want:      fresh,
			wantSaved: true,
		},
		{
			name:   "fetch failure uses cache",
			source: &stubSource{err: errNetwork},
			cache:  &stubCache{dataset: cached},
			want:   cached,
		},
		{
			name:   "fetch failure and empty cache",
			source: &stubSource{err: errNetwork},
			cache:  &stubCache{loadErr: domain.ErrNoSnapshot},
			want:   nil,
		},
		{
			name:   "fetch failure and broken cache",
			source: &stubSource{err: errNetwork},
			cache:  &stubCache{loadErr: errors.New("decode cache: unexpected EOF")},
			want:   nil,
		},
		{
			name:   "fetch failure without cache",
			source: &stubSource{err: errNetwork},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newPanelService(tt.source, tt.cache)

			got := svc.LoadDataset(context.Background())
			assert.Equal(t, tt.want, got)
			if tt.cache != nil {
				assert.Equal(t, tt.wantSaved, tt.cache.saved != nil)
			}
		})
	}
}

func TestBuildPanelResolvesLocale(t *testing.T) {
	svc := newPanelService(&stubSource{dataset: sampleDataset()}, nil)

	de := svc.BuildPanel(context.Background(), domain.SizeMedium, []string{"de-CH", "fr-CH"})
	assert.Equal(t, domain.LocaleDE, de.Locale)
	assert.Equal(t, "Ja: 1.4M", de.Rows[0].Supporters)

	fallback := svc.BuildPanel(context.Background(), domain.SizeMedium, []string{"es-ES"})
	assert.Equal(t, domain.LocaleFR, fallback.Locale)
}

func TestBuildPanelFetchFailureLooksLikeEmptyDataset(t *testing.T) {
	failing := newPanelService(&stubSource{err: errNetwork}, &stubCache{loadErr: domain.ErrNoSnapshot})
	empty := newPanelService(&stubSource{dataset: &entities.CampaignDataset{}}, nil)

	for _, size := range []domain.Size{domain.SizeSmall, domain.SizeMedium, domain.SizeLarge} {
		got := failing.BuildPanel(context.Background(), size, []string{"it-CH"})
		want := empty.BuildPanel(context.Background(), size, []string{"it-CH"})
		assert.Equal(t, want, got)
		assert.Equal(t, "Nessun dato", got.NoData)
	}
}
