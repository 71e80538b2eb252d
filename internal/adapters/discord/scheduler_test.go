package discord

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"financement/internal/domain"
	"financement/internal/domain/entities"
)

type stubPanels struct{}

func (stubPanels) BuildPanel(_ context.Context, size domain.Size, tags []string) *entities.Panel {
	return &entities.Panel{Size: size, Locale: domain.ResolveLocale(tags)}
}

func (stubPanels) LoadDataset(context.Context) *entities.CampaignDataset { return nil }

type recordingPublisher struct {
	mu     sync.Mutex
	panels []*entities.Panel
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, panel *entities.Panel) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.panels = append(p.panels, panel)
	return p.err
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.panels)
}

func TestSchedulerPublishesUntilCancelled(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("webhook down")}
	s := NewScheduler(stubPanels{}, publisher, domain.SizeLarge, []string{"de-CH"}, 10*time.Millisecond, log.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return publisher.count() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}

	publisher.mu.Lock()
	defer publisher.mu.Unlock()
	assert.Equal(t, domain.SizeLarge, publisher.panels[0].Size)
	assert.Equal(t, domain.LocaleDE, publisher.panels[0].Locale)
}
