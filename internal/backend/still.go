package backend

import (
	"bytes"
	"context"
	"image/png"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"snapdeck/internal/capture"
	"snapdeck/internal/progress"
)

var tracer = otel.Tracer("snapdeck/backend")

// Still captures a single PNG for screenshot mode.
type Still struct {
	Screen   Screen
	Resolver *Resolver
	Store    *Store
	Delivery Delivery
	Progress progress.Emitter
}

// Execute implements capture.Executor.
func (s *Still) Execute(ctx context.Context, cfg capture.Configuration) capture.Result {
	ctx, span := tracer.Start(ctx, "backend.still", trace.WithAttributes(cfg.Attributes()...))
	defer span.End()

	start := time.Now()
	res := capture.Result{Configuration: cfg}
	emit := emitterOr(s.Progress)
	emit.Emit(progress.Event{Message: "capturing " + cfg.String(), Status: progress.StatusRunning})

	fail := func(op string, err error) capture.Result {
		res.Err = wrapError(op, err)
		res.Elapsed = time.Since(start)
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, op)
		log.Printf("backend.Still.Execute: %s: %v", cfg, res.Err)
		emit.Emit(progress.Event{Message: res.Err.Error(), Status: progress.StatusError})
		return res
	}

	if err := ctx.Err(); err != nil {
		return fail("screenshot", err)
	}
	rect, err := s.Resolver.Resolve(cfg.SelectionType)
	if err != nil {
		return fail("resolve "+cfg.SelectionType.String(), err)
	}
	img, err := s.Screen.CaptureRect(rect)
	if err != nil {
		return fail("screenshot", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fail("encode png", err)
	}
	path, err := s.Store.Save(cfg, "png", buf.Bytes())
	if err != nil {
		return fail("save", err)
	}

	res.Path = path
	res.Frames = 1
	res.Elapsed = time.Since(start)
	span.SetAttributes(attribute.String("snapdeck.output.path", path))

	if s.Delivery != nil {
		if err := s.Delivery.Deliver(path, buf.Bytes()); err != nil {
			log.Printf("backend.Still.Execute: deliver %s: %v", path, err)
			res.Note = err.Error()
		}
	}
	emit.Emit(progress.Event{
		Message:  "saved " + path,
		Status:   progress.StatusDone,
		Metadata: map[string]string{"path": path},
	})
	return res
}

func emitterOr(e progress.Emitter) progress.Emitter {
	if e == nil {
		return progress.Discard
	}
	return e
}
