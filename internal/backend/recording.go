package backend

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"strconv"
	"time"

	vidio "github.com/AlexEidt/Vidio"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"snapdeck/internal/capture"
	"snapdeck/internal/progress"
)

// FrameSink consumes recorded frames. Every frame has the size the sink was opened with.
type FrameSink interface {
	Write(frame *image.RGBA) error
	Close() error
}

// SinkOpener opens a FrameSink writing to path.
type SinkOpener func(path string, width, height int, fps float64) (FrameSink, error)

// OpenVideoSink encodes frames to H.264 through ffmpeg.
func OpenVideoSink(path string, width, height int, fps float64) (FrameSink, error) {
	w, err := vidio.NewVideoWriter(path, width, height, &vidio.Options{
		FPS:     fps,
		Quality: 0.5,
		Codec:   "libx264",
	})
	if err != nil {
		return nil, err
	}
	return &videoSink{w: w, width: width, height: height}, nil
}

type videoSink struct {
	w      *vidio.VideoWriter
	width  int
	height int
	buf    []byte
}

func (s *videoSink) Write(frame *image.RGBA) error {
	rowLen := s.width * 4
	if frame.Stride == rowLen && len(frame.Pix) == rowLen*s.height {
		return s.w.Write(frame.Pix)
	}
	if s.buf == nil {
		s.buf = make([]byte, rowLen*s.height)
	}
	for y := 0; y < s.height; y++ {
		off := frame.PixOffset(frame.Rect.Min.X, frame.Rect.Min.Y+y)
		copy(s.buf[y*rowLen:(y+1)*rowLen], frame.Pix[off:off+rowLen])
	}
	return s.w.Write(s.buf)
}

func (s *videoSink) Close() error {
	s.w.Close()
	return nil
}

// Recording captures frames into a video until ctx is cancelled or
// MaxDuration elapses. Cancellation is the normal way to stop and is not an error.
type Recording struct {
	Screen      Screen
	Resolver    *Resolver
	Store       *Store
	Delivery    Delivery
	Progress    progress.Emitter
	FPS         int
	MaxDuration time.Duration
	// OpenSink defaults to OpenVideoSink.
	OpenSink SinkOpener
}

// Execute implements capture.Executor.
func (r *Recording) Execute(ctx context.Context, cfg capture.Configuration) capture.Result {
	ctx, span := tracer.Start(ctx, "backend.recording", trace.WithAttributes(cfg.Attributes()...))
	defer span.End()

	start := time.Now()
	res := capture.Result{Configuration: cfg}
	emit := emitterOr(r.Progress)

	fail := func(op string, err error) capture.Result {
		res.Err = wrapError(op, err)
		res.Elapsed = time.Since(start)
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, op)
		log.Printf("backend.Recording.Execute: %s: %v", cfg, res.Err)
		emit.Emit(progress.Event{Message: res.Err.Error(), Status: progress.StatusError})
		return res
	}

	rect, err := r.Resolver.Resolve(cfg.SelectionType)
	if err != nil {
		return fail("resolve "+cfg.SelectionType.String(), err)
	}
	rect = evenRect(rect)
	if rect.Empty() {
		return fail("resolve "+cfg.SelectionType.String(), ErrEmptySelection)
	}
	path, err := r.Store.NextPath(cfg, "mp4")
	if err != nil {
		return fail("save", err)
	}
	open := r.OpenSink
	if open == nil {
		open = OpenVideoSink
	}
	fps := r.FPS
	if fps <= 0 {
		fps = 1
	}
	sink, err := open(path, rect.Dx(), rect.Dy(), float64(fps))
	if err != nil {
		return fail("open video", err)
	}

	emit.Emit(progress.Event{
		Message:  "recording " + cfg.String(),
		Status:   progress.StatusRunning,
		Metadata: map[string]string{"path": path, "frames": "0"},
	})

	frames, stopped, loopErr := r.loop(ctx, rect, fps, sink, emit, start)
	closeErr := sink.Close()
	res.Frames = frames
	res.Elapsed = time.Since(start)
	span.SetAttributes(attribute.Int("snapdeck.frames", frames))

	if err := errors.Join(loopErr, closeErr); err != nil {
		return fail("record", err)
	}
	if frames == 0 {
		return fail("record", fmt.Errorf("stopped before the first frame"))
	}

	res.Path = path
	span.SetAttributes(attribute.String("snapdeck.output.path", path))
	if r.Delivery != nil {
		if err := r.Delivery.Deliver(path, nil); err != nil {
			log.Printf("backend.Recording.Execute: deliver %s: %v", path, err)
			res.Note = err.Error()
		}
	}
	done := progress.Event{
		Message: fmt.Sprintf("saved %s (%d frames)", path, frames),
		Status:  progress.StatusDone,
		Metadata: map[string]string{
			"path":    path,
			"frames":  strconv.Itoa(frames),
			"elapsed": res.Elapsed.Round(time.Second).String(),
		},
	}
	// A cancelled recording still keeps what was written.
	if stopped {
		done.Status = progress.StatusAborted
		done.Message = "stopped, " + done.Message
	}
	emit.Emit(done)
	return res
}

// loop writes frames until ctx is done or MaxDuration elapses. stopped is
// true when ctx ended it.
func (r *Recording) loop(ctx context.Context, rect image.Rectangle, fps int, sink FrameSink, emit progress.Emitter, start time.Time) (frames int, stopped bool, err error) {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var deadline <-chan time.Time
	if r.MaxDuration > 0 {
		timer := time.NewTimer(r.MaxDuration)
		defer timer.Stop()
		deadline = timer.C
	}

	lastReport := start
	for {
		img, err := r.Screen.CaptureRect(rect)
		if err != nil {
			return frames, false, err
		}
		if err := sink.Write(img); err != nil {
			return frames, false, err
		}
		frames++

		if now := time.Now(); now.Sub(lastReport) >= time.Second {
			lastReport = now
			elapsed := now.Sub(start).Round(time.Second)
			emit.Emit(progress.Event{
				Message: fmt.Sprintf("recording %s, %d frames", elapsed, frames),
				Status:  progress.StatusRunning,
				Metadata: map[string]string{
					"frames":  strconv.Itoa(frames),
					"elapsed": elapsed.String(),
				},
			})
		}

		select {
		case <-ctx.Done():
			return frames, true, nil
		case <-deadline:
			return frames, false, nil
		case <-ticker.C:
		}
	}
}
