package backend

import (
	"context"
	"time"

	"snapdeck/internal/capture"
	"snapdeck/internal/config"
	"snapdeck/internal/progress"
)

// Router dispatches a configuration to the executor for its mode.
type Router struct {
	Still     capture.Executor
	Recording capture.Executor
}

// Execute implements capture.Executor.
func (r *Router) Execute(ctx context.Context, cfg capture.Configuration) capture.Result {
	switch cfg.Mode {
	case capture.ModeScreenshot:
		if r.Still != nil {
			return r.Still.Execute(ctx, cfg)
		}
	case capture.ModeRecording:
		if r.Recording != nil {
			return r.Recording.Execute(ctx, cfg)
		}
	}
	return capture.Result{Configuration: cfg, Err: wrapError("route "+cfg.Mode.String(), ErrUnknownMode)}
}

// Options overrides the system collaborators used by New.
type Options struct {
	Screen   Screen
	Windows  WindowLocator
	Delivery Delivery
	Progress progress.Emitter
	OpenSink SinkOpener
}

// New wires a Router for cfg using the desktop unless opts says otherwise.
func New(cfg *config.Config, opts Options) (*Router, error) {
	store, err := NewStore(cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	if opts.Screen == nil {
		opts.Screen = SystemScreen{}
	}
	if opts.Windows == nil {
		opts.Windows = RobotgoLocator{}
	}
	if opts.Delivery == nil {
		opts.Delivery = NewDelivery(cfg.Clipboard)
	}
	resolver := &Resolver{Screen: opts.Screen, Windows: opts.Windows, Region: cfg.Region}
	return &Router{
		Still: &Still{
			Screen:   opts.Screen,
			Resolver: resolver,
			Store:    store,
			Delivery: opts.Delivery,
			Progress: opts.Progress,
		},
		Recording: &Recording{
			Screen:      opts.Screen,
			Resolver:    resolver,
			Store:       store,
			Delivery:    opts.Delivery,
			Progress:    opts.Progress,
			FPS:         cfg.Recording.FPS,
			MaxDuration: maxDuration(cfg.Recording.MaxDuration),
			OpenSink:    opts.OpenSink,
		},
	}, nil
}

func maxDuration(d time.Duration) time.Duration {
	if d <= 0 {
		return config.DefaultMaxDuration
	}
	return d
}
