// picst: resize images as they land on the clipboard.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "picst",
		Short: "Resize images as they land on the clipboard",
		Long: `picst watches the system clipboard. Every new image copied to it is
resized and put back, ready to paste. Its own output is recognised and left
alone.

Give the target size with --ratio, or with --height and/or --width (pixels,
or percentages with --percent). Anything left open is asked for on the
terminal each time a new image shows up.

Config file search order (first found wins):
  /etc/picst/picst.toml
  $HOME/.config/picst/picst.toml
  path supplied via --config

Precedence (lowest → highest): defaults → config file → PICST_* env vars → flags`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE:      func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:         func(cmd *cobra.Command, _ []string) error { return runWatch(cmd.Context(), v) },
	}

	addResizeFlags(root)
	addLoggingFlags(root)
	addConfigFlag(root)

	root.AddCommand(
		newOnceCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "picst %s\n", Version)
		},
	}
}
