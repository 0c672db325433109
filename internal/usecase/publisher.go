package usecase

import (
	"context"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type eventPublisher interface {
	Publish(ctx context.Context, event entity.Event)
}

// Publishers fans an event out to every publisher in order.
type Publishers []eventPublisher

func (that Publishers) Publish(ctx context.Context, event entity.Event) {
	for _, publisher := range that {
		publisher.Publish(ctx, event)
	}
}
