package capture

import "context"

// Executor performs a capture for a configuration snapshot.
// Implementations may block, hand off to a goroutine, or call a remote service;
// the controller only guarantees cfg is accurate at call time.
type Executor interface {
	Execute(ctx context.Context, cfg Configuration) Result
}

// ExecutorFunc adapts an ordinary function to Executor.
type ExecutorFunc func(ctx context.Context, cfg Configuration) Result

// Execute implements Executor.
func (f ExecutorFunc) Execute(ctx context.Context, cfg Configuration) Result {
	return f(ctx, cfg)
}
