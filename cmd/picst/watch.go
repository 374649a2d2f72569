package main

import (
	"context"
	"os"

	"github.com/spf13/viper"

	"go.klb.dev/picst/internal/clip"
	"go.klb.dev/picst/internal/report"
	"go.klb.dev/picst/internal/sizing"
)

func runWatch(ctx context.Context, v *viper.Viper) error {
	log := setupLogging(v)

	ctx, stop := context.WithCancel(ctx)
	defer stop()

	s, err := newSession(ctx, stop, v, os.Stdin, os.Stderr)
	if err != nil {
		return err
	}

	backend := clip.New()
	defer backend.Close()

	log.Info("picst starting",
		"version", Version,
		"backend", backend.Name(),
		"engine", s.resampler.Name(),
		"request", sizing.Describe(s.request),
	)
	s.warnIfUnanswerable(log)

	out := report.New(os.Stdout, os.Stderr)
	out.Banner(Version, sizing.Describe(s.request))

	s.loop(backend, out, log).Run(ctx)
	return nil
}
