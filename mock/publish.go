package mock

import (
	"context"

	"github.com/fwojciec/llmstxt"
)

var _ llmstxt.Publisher = (*Publisher)(nil)

// Publisher is a mock implementation of llmstxt.Publisher.
type Publisher struct {
	PublishFn func(ctx context.Context, snap *llmstxt.Snapshot, artifactPath string) (int, error)
}

func (p *Publisher) Publish(ctx context.Context, snap *llmstxt.Snapshot, artifactPath string) (int, error) {
	return p.PublishFn(ctx, snap, artifactPath)
}
