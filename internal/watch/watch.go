// Package watch runs the clipboard poll loop: read the current image, skip it
// if it is our own output echoing back, otherwise resolve a target size,
// resample, remember the output fingerprint and publish.
//
// The loop is strictly sequential. Nothing is read from the clipboard while
// an image is being resolved (possibly waiting on a prompt), resampled or
// published, and the output fingerprint is recorded before the write is
// attempted so the next poll can never mistake it for new input.
package watch

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"go.klb.dev/picst/internal/sample"
	"go.klb.dev/picst/internal/sizing"
	"go.klb.dev/picst/internal/tracker"
)

// DefaultInterval is the pause between two clipboard polls.
const DefaultInterval = 250 * time.Millisecond

// Clipboard is the subset of clip.Backend the loop needs.
type Clipboard interface {
	ReadImage() (*sample.Sample, error)
	WriteImage(s *sample.Sample) error
}

// Resampler scales a sample to a resolved size.
type Resampler interface {
	Resample(src *sample.Sample, size sizing.Size) (*sample.Sample, error)
}

// ResolveFunc picks the target size for a new clipboard image.
type ResolveFunc func(src *sample.Sample) (sizing.Size, error)

// Reporter receives user-facing notifications.
type Reporter interface {
	Published(r Result)
	PublishFailed(err error)
}

// Result describes one published image.
type Result struct {
	Source  sizing.Size
	Output  sizing.Size
	Bytes   int
	Elapsed time.Duration
}

// Outcome is what a single Step did.
type Outcome int

const (
	// Idle: no readable image on the clipboard.
	Idle Outcome = iota
	// Echo: the clipboard still shows our last output.
	Echo
	// Handled: the image was already processed or rejected and has not
	// changed since.
	Handled
	// Published: a resized image was written to the clipboard.
	Published
	// ResolveFailed: no target size could be determined.
	ResolveFailed
	// ResampleFailed: the resampler returned an error.
	ResampleFailed
	// PublishFailed: the clipboard write failed.
	PublishFailed
)

var outcomeNames = [...]string{"idle", "echo", "handled", "published", "resolve_failed", "resample_failed", "publish_failed"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Options tunes the loop.
type Options struct {
	// Interval is the sleep between polls. Default: DefaultInterval.
	Interval time.Duration
	// Reporter receives publish notifications. Optional.
	Reporter Reporter
	// Logger overrides the default slog logger.
	Logger *slog.Logger
}

func (o *Options) defaults() {
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Stats are point-in-time counters.
type Stats struct {
	Checks           int64 `json:"checks"`
	Echoes           int64 `json:"echoes"`
	Resized          int64 `json:"resized"`
	ResolveFailures  int64 `json:"resolve_failures"`
	ResampleFailures int64 `json:"resample_failures"`
	PublishFailures  int64 `json:"publish_failures"`
}

// Loop owns the tracker and drives one clipboard.
type Loop struct {
	clip      Clipboard
	resampler Resampler
	resolve   ResolveFunc
	tracker   *tracker.Tracker
	opts      Options

	// handled is the input fingerprint of the last image that went through
	// resolve, so a failed image is not retried on every poll. Cleared as
	// soon as the clipboard shows anything else, so copying the same image
	// again later is processed again.
	handled *sample.Fingerprint

	checks           atomic.Int64
	echoes           atomic.Int64
	resized          atomic.Int64
	resolveFailures  atomic.Int64
	resampleFailures atomic.Int64
	publishFailures  atomic.Int64
}

// New creates a Loop. Call Run to start polling or Step for one iteration.
func New(c Clipboard, r Resampler, resolve ResolveFunc, t *tracker.Tracker, opts Options) *Loop {
	opts.defaults()
	if t == nil {
		t = tracker.New()
	}
	return &Loop{
		clip:      c,
		resampler: r,
		resolve:   resolve,
		tracker:   t,
		opts:      opts,
	}
}

// Stats returns the current counters.
func (l *Loop) Stats() Stats {
	return Stats{
		Checks:           l.checks.Load(),
		Echoes:           l.echoes.Load(),
		Resized:          l.resized.Load(),
		ResolveFailures:  l.resolveFailures.Load(),
		ResampleFailures: l.resampleFailures.Load(),
		PublishFailures:  l.publishFailures.Load(),
	}
}

// Run polls until ctx is cancelled. Each iteration runs to completion before
// the interval sleep starts.
func (l *Loop) Run(ctx context.Context) {
	log := l.opts.Logger
	log.Info("watch: started", "interval", l.opts.Interval)

	timer := time.NewTimer(l.opts.Interval)
	defer timer.Stop()

	for ctx.Err() == nil {
		l.Step()

		timer.Reset(l.opts.Interval)
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}

	s := l.Stats()
	log.Info("watch: stopped",
		"checks", s.Checks,
		"resized", s.Resized,
		"echoes", s.Echoes,
		"failures", s.ResolveFailures+s.ResampleFailures+s.PublishFailures,
	)
}

// Step runs a single poll iteration. Every error is handled here; none
// escapes to the caller.
func (l *Loop) Step() Outcome {
	log := l.opts.Logger
	l.checks.Add(1)

	src, err := l.clip.ReadImage()
	if err != nil {
		log.Debug("watch: no clipboard image", "err", err)
		l.handled = nil
		return Idle
	}

	fp := src.Fingerprint()
	if l.tracker.Observe(fp) == tracker.Echo {
		l.echoes.Add(1)
		l.handled = nil
		return Echo
	}
	if l.handled != nil && *l.handled == fp {
		return Handled
	}
	l.handled = &fp

	log.Debug("watch: new clipboard image", "width", src.Width, "height", src.Height, "fingerprint", fp)

	size, err := l.resolve(src)
	if err != nil {
		l.resolveFailures.Add(1)
		if errors.Is(err, sizing.ErrInteractionAborted) {
			log.Warn("resize cancelled", "err", err)
		} else {
			log.Warn("could not determine target size", "err", err)
		}
		return ResolveFailed
	}

	start := time.Now()
	out, err := l.resampler.Resample(src, size)
	if err != nil {
		l.resampleFailures.Add(1)
		log.Error("resample failed", "err", err, "height", size.Height, "width", size.Width)
		return ResampleFailed
	}

	// Record first: the write may change the clipboard even if it reports
	// an error.
	l.tracker.Record(out.Fingerprint())

	if err := l.clip.WriteImage(out); err != nil {
		l.publishFailures.Add(1)
		log.Warn("clipboard write failed", "err", err)
		if l.opts.Reporter != nil {
			l.opts.Reporter.PublishFailed(err)
		}
		return PublishFailed
	}

	l.resized.Add(1)
	res := Result{
		Source:  sizing.Size{Height: src.Height, Width: src.Width},
		Output:  sizing.Size{Height: out.Height, Width: out.Width},
		Bytes:   len(out.Pix),
		Elapsed: time.Since(start),
	}
	log.Info("image resized", "from", res.Source, "to", res.Output, "elapsed", res.Elapsed)
	if l.opts.Reporter != nil {
		l.opts.Reporter.Published(res)
	}
	return Published
}
