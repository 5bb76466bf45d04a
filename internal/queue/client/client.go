package client

import (
	"context"
	"sync"

	"github.com/hibiken/asynq"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

type ctxKey int

const (
	_ ctxKey = iota
	asyncQCtxKey
)

var (
	globalClient *asynq.Client
	globalMu     sync.RWMutex
)

// GetClient returns the client stored in ctx, falling back to the global one.
// It's safe for concurrent use.
func GetClient(ctx context.Context) *asynq.Client {
	if c := ctx.Value(asyncQCtxKey); c != nil {
		client, ok := c.(*asynq.Client)
		if !ok {
			return nil
		}
		return client
	}

	globalMu.RLock()
	client := globalClient
	globalMu.RUnlock()

	return client
}

// SetClient replaces the global Client, and returns a
// function to restore the original value. It's safe for concurrent use.
func SetClient(client *asynq.Client) func() {
	globalMu.Lock()
	prev := globalClient
	globalClient = client
	globalMu.Unlock()
	return func() { SetClient(prev) }
}

// WithClient scopes a client to ctx, overriding the global one.
func WithClient(ctx context.Context, client *asynq.Client) context.Context {
	return context.WithValue(ctx, asyncQCtxKey, client)
}

// Global enqueues through whatever client GetClient resolves at call time.
type Global struct{}

func (Global) EnqueueContext(ctx context.Context, t *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	c := GetClient(ctx)
	if c == nil {
		return nil, domain.ErrQueueDisabled
	}
	return c.EnqueueContext(ctx, t, opts...)
}
