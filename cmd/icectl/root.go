package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cnlutao/ice/cmd/icectl/internal/version"
	"github.com/cnlutao/ice/core/log"
	"github.com/cnlutao/ice/logx"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	config    string
	logFormat string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	root := &cobra.Command{
		Use:   "icectl",
		Short: "Inspect and run communicator configurations",
		Long: `icectl works with communicator property sets.

It validates property files against the known Ice property names, parses
stringified proxies and runs a small echo server with Prometheus metrics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(&g.config, "config", "", "Property file(s), comma separated (sets Ice.Config)")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "logfmt", "Log format: logfmt, json or console")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "V", false, "Enable debug logging")

	root.AddCommand(
		newValidateCmd(g),
		newRunCmd(g),
		newProxyCmd(g),
		newVersionCmd(),
	)
	return root
}

// logger builds the logger selected by --log-format and --verbose, writing to w.
func (g *globalOptions) logger(w io.Writer) (log.Logger, error) {
	if g.logFormat == "console" {
		level := zerolog.InfoLevel
		if g.verbose {
			level = zerolog.DebugLevel
		}
		return logx.NewConsole(w, level), nil
	}

	format, err := logx.ParseFormat(g.logFormat)
	if err != nil {
		return nil, fmt.Errorf("--log-format: %w", err)
	}
	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}
	return logx.New(logx.WithFormat(format), logx.WithLevel(level), logx.WithWriter(w)), nil
}

// iceArgs prefixes args with --Ice.Config when --config was given.
func (g *globalOptions) iceArgs(args []string) []string {
	if g.config == "" {
		return args
	}
	return append([]string{"--Ice.Config=" + g.config}, args...)
}
