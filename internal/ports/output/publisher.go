package output

import (
	"context"

	"financement/internal/domain/entities"
)

// PanelPublisher pushes a rendered panel to an external channel.
type PanelPublisher interface {
	Publish(ctx context.Context, panel *entities.Panel) error
}
