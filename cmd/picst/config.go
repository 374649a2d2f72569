package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/picst/internal/logging"
	"go.klb.dev/picst/internal/resample"
	"go.klb.dev/picst/internal/sizing"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and PICST_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → PICST_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("picst")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/picst/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/picst", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("PICST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addResizeFlags adds the target size flags to a command.
func addResizeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Uint32P("height", "H", 0, "target height in pixels (percent with --percent)")
	f.Uint32P("width", "w", 0, "target width in pixels (percent with --percent)")
	f.BoolP("percent", "p", false, "read --height/--width as percentages in [1, 100)")
	f.Float64P("ratio", "r", 0, "scale both sides by this factor in (0, 1]")
	f.BoolP("ignore-aspect-ratio", "i", false, "ask for the missing dimension instead of keeping the aspect ratio")
	f.String("engine", resample.DefaultEngine, "resample engine: "+strings.Join(resample.Engines(), "|"))

	for _, other := range []string{"height", "width", "percent", "ignore-aspect-ratio"} {
		cmd.MarkFlagsMutuallyExclusive("ratio", other)
	}
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "", "log level: debug|info|warn|error (default: warn on a terminal, info otherwise)")
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) *slog.Logger {
	interactive := logging.IsTTY(os.Stderr)
	return logging.Setup(
		logging.ParseFormat(v.GetString("log-format")),
		logging.ParseLevel(v.GetString("log-level"), interactive),
	)
}

// optionsFromViper collects the resize settings. Only keys that were set
// somewhere (config, env or an explicit flag) become non-nil, so an explicit
// zero survives to be rejected by sizing.Options.Request.
func optionsFromViper(v *viper.Viper) sizing.Options {
	var o sizing.Options
	if v.IsSet("height") {
		h := v.GetUint32("height")
		o.Height = &h
	}
	if v.IsSet("width") {
		w := v.GetUint32("width")
		o.Width = &w
	}
	if v.IsSet("ratio") {
		r := v.GetFloat64("ratio")
		o.Ratio = &r
	}
	o.Percent = v.GetBool("percent")
	o.IgnoreAspectRatio = v.GetBool("ignore-aspect-ratio")
	return o
}
