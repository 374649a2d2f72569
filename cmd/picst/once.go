package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/picst/internal/clip"
	"go.klb.dev/picst/internal/report"
	"go.klb.dev/picst/internal/watch"
)

func newOnceCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "once",
		Short: "Resize the image currently on the clipboard and exit",
		Long: `Runs a single pass over the current clipboard image with the same
resize options as the watcher. Exits non-zero if the clipboard holds no image
or the image could not be resized and published.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runOnce(cmd.Context(), v) },
	}

	addResizeFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runOnce(ctx context.Context, v *viper.Viper) error {
	log := setupLogging(v)

	ctx, stop := context.WithCancel(ctx)
	defer stop()

	s, err := newSession(ctx, stop, v, os.Stdin, os.Stderr)
	if err != nil {
		return err
	}
	s.warnIfUnanswerable(log)

	backend := clip.New()
	defer backend.Close()

	return onceOutcome(s.loop(backend, report.New(os.Stdout, os.Stderr), log).Step())
}

func onceOutcome(o watch.Outcome) error {
	switch o {
	case watch.Published:
		return nil
	case watch.Idle:
		return clip.ErrNoImage
	default:
		return fmt.Errorf("resize: %s", o)
	}
}
