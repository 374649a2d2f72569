package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"go.klb.dev/picst/internal/logging"
	"go.klb.dev/picst/internal/prompt"
	"go.klb.dev/picst/internal/resample"
	"go.klb.dev/picst/internal/sample"
	"go.klb.dev/picst/internal/sizing"
	"go.klb.dev/picst/internal/watch"
)

// session is the validated configuration shared by the watch and once
// commands.
type session struct {
	request   sizing.Request
	resampler resample.Resampler
	asker     sizing.Asker
}

// newSession validates the resize settings and picks the engine. Prompts are
// only wired when in is a terminal; otherwise anything left open fails to
// resolve with sizing.ErrInteractionAborted. Ctrl+C inside a prompt calls
// stop, the same as SIGINT outside one.
func newSession(ctx context.Context, stop context.CancelFunc, v *viper.Viper, in io.Reader, promptOut io.Writer) (*session, error) {
	req, err := optionsFromViper(v).Request()
	if err != nil {
		return nil, fmt.Errorf("resize options: %w", err)
	}
	r, err := resample.New(v.GetString("engine"))
	if err != nil {
		return nil, err
	}

	s := &session{request: req, resampler: r}
	if isTerminal(in) {
		p := prompt.New(ctx, in, promptOut)
		p.OnInterrupt(stop)
		s.asker = prompt.NewAsker(p)
	}
	return s, nil
}

func (s *session) resolve(src *sample.Sample) (sizing.Size, error) {
	return sizing.Resolve(s.request, src, s.asker)
}

func (s *session) loop(c watch.Clipboard, rep watch.Reporter, log *slog.Logger) *watch.Loop {
	return watch.New(c, s.resampler, s.resolve, nil, watch.Options{
		Reporter: rep,
		Logger:   log,
	})
}

// warnIfUnanswerable logs once when the request needs prompts that can
// never be shown.
func (s *session) warnIfUnanswerable(log *slog.Logger) {
	if s.asker == nil && sizing.NeedsInput(s.request) {
		log.Warn("stdin is not a terminal: images that need a size prompt will be skipped",
			"request", sizing.Describe(s.request))
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && logging.IsTTY(f)
}
