// Package capture holds the capture configuration state and the trigger contract.
//
// A Controller owns the active Mode and SelectionType. Setters replace them
// independently; Trigger snapshots both into a Configuration and hands it to an
// Executor. The controller is meant to be driven from a single event loop and
// does no locking of its own.
package capture

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("snapdeck/capture")

// Controller holds the current capture mode and selection type.
// The zero value is (ModeScreenshot, SelectionRegion) with no executor.
type Controller struct {
	mode      Mode
	selection SelectionType
	executor  Executor
}

// NewController returns a controller in the default state that triggers executor.
func NewController(executor Executor) *Controller {
	return &Controller{
		mode:      ModeScreenshot,
		selection: SelectionRegion,
		executor:  executor,
	}
}

// Mode returns the current capture mode.
func (c *Controller) Mode() Mode { return c.mode }

// SelectionType returns the current selection type.
func (c *Controller) SelectionType() SelectionType { return c.selection }

// Configuration returns a snapshot of the current state.
func (c *Controller) Configuration() Configuration {
	return Configuration{Mode: c.mode, SelectionType: c.selection}
}

// SetMode replaces the current mode. Passing a value outside the closed set is a
// programming error and panics.
func (c *Controller) SetMode(m Mode) {
	if !m.Valid() {
		panic(fmt.Sprintf("capture: invalid mode %d", int(m)))
	}
	c.mode = m
}

// SetSelectionType replaces the current selection type. Passing a value outside
// the closed set is a programming error and panics.
func (c *Controller) SetSelectionType(s SelectionType) {
	if !s.Valid() {
		panic(fmt.Sprintf("capture: invalid selection type %d", int(s)))
	}
	c.selection = s
}

// Trigger snapshots the current configuration and passes it to the executor.
// The executor's Result is its own business; Trigger never fails.
func (c *Controller) Trigger(ctx context.Context) {
	cfg := c.Configuration()
	if c.executor == nil {
		log.Printf("capture.Controller.Trigger: no executor, dropping %s", cfg)
		return
	}
	ctx, span := tracer.Start(ctx, "capture.trigger", trace.WithAttributes(cfg.Attributes()...))
	defer span.End()
	c.executor.Execute(ctx, cfg)
}
