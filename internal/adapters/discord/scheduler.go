package discord

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"financement/internal/domain"
	"financement/internal/ports/input"
	"financement/internal/ports/output"
)

// Scheduler republishes the panel at a fixed interval.
type Scheduler struct {
	panels     input.PanelUseCase
	publisher  output.PanelPublisher
	size       domain.Size
	localeTags []string
	interval   time.Duration
	logger     *log.Logger
}

func NewScheduler(
	panels input.PanelUseCase,
	publisher output.PanelPublisher,
	size domain.Size,
	localeTags []string,
	interval time.Duration,
	logger *log.Logger,
) *Scheduler {
	return &Scheduler{
		panels:     panels,
		publisher:  publisher,
		size:       size,
		localeTags: localeTags,
		interval:   interval,
		logger:     logger,
	}
}

// Run publishes once immediately, then on every tick until ctx is done.
// A failed publication is logged and retried at the next tick.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("⏰ Publication planifiée", "interval", s.interval)
	for {
		s.publishOnce(ctx)
		select {
		case <-ctx.Done():
			s.logger.Info("🛑 Publication planifiée arrêtée")
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) publishOnce(ctx context.Context) {
	panel := s.panels.BuildPanel(ctx, s.size, s.localeTags)
	if err := s.publisher.Publish(ctx, panel); err != nil {
		s.logger.Error("❌ Erreur lors de la publication", "err", err)
	}
}
