// Command pointfield is a line-oriented driver for a point field.
//
// It reads commands from stdin (or -script) and applies them to one graph
// through an interaction session, printing results to stdout:
//
//	$ pointfield -log-level=debug
//	> mode add
//	> click 0 0
//	added 1
//	...
//
// Type "help" for the command list.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pointfield/config"
	"github.com/katalvlaran/pointfield/core"
	"github.com/katalvlaran/pointfield/interaction"
)

// options are the command-line flags.
type options struct {
	ConfigFile string
	ScriptFile string
	LogLevel   string
	JSONLogs   bool
}

func main() {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.JSONLogs {
		cfg.Log.Format = config.FormatJSON
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	in := io.Reader(os.Stdin)
	interactive := true
	if opts.ScriptFile != "" {
		f, err := os.Open(opts.ScriptFile)
		if err != nil {
			logger.Fatal().Err(err).Str("script", opts.ScriptFile).Msg("cannot open script")
		}
		defer f.Close()
		in = f
		interactive = false
	}

	sh, err := newShell(cfg, logger, os.Stdout)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start session")
	}
	sh.prompt = interactive

	logger.Info().Float64("hit_radius", cfg.HitRadius).Msg("pointfield ready")
	if err := sh.run(in); err != nil {
		logger.Error().Err(err).Msg("input failed")
		os.Exit(1)
	}
}

// parseFlags parses command-line flags.
func parseFlags() options {
	var o options
	flag.StringVar(&o.ConfigFile, "config", "pointfield.yaml", "Path to YAML config file (missing file = defaults)")
	flag.StringVar(&o.ScriptFile, "script", "", "Read commands from this file instead of stdin")
	flag.StringVar(&o.LogLevel, "log-level", "", "Override log level: trace, debug, info, warn, error, disabled")
	flag.BoolVar(&o.JSONLogs, "json-logs", false, "Emit JSON logs instead of console output")
	flag.Parse()

	return o
}

// newLogger builds the process logger from cfg, writing to w.
func newLogger(cfg config.Log, w io.Writer) (zerolog.Logger, error) {
	lvl, err := cfg.ParseLevel()
	if err != nil {
		return zerolog.Nop(), err
	}
	out := w
	if cfg.Format == config.FormatConsole {
		out = zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
			cw.Out = w
			cw.TimeFormat = time.TimeOnly
		})
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// newShell wires a graph and a session from cfg.
func newShell(cfg config.Config, logger zerolog.Logger, out io.Writer) (*shell, error) {
	g := core.NewGraph(core.WithLogger(logger.With().Str("component", "core").Logger()))
	s, err := interaction.NewSession(g,
		interaction.WithHitRadius(cfg.HitRadius),
		interaction.WithMaxPathDistance(cfg.MaxPathDistance),
		interaction.WithLogger(logger.With().Str("component", "session").Logger()),
	)
	if err != nil {
		return nil, err
	}

	return &shell{session: s, out: out, log: logger, cmds: commandTable()}, nil
}
