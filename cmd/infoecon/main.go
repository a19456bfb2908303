// Command infoecon plays the information-theoretic economy: research to
// shrink uncertainty over production methods, produce to turn productivity
// into money.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/alexshd/infoecon"
)

func main() {
	if err := newRootCmd(environMap()).Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every command needs once flags are parsed.
type app struct {
	opts    options
	environ map[string]string
	closeFn func() error
}

func newRootCmd(environ map[string]string) *cobra.Command {
	a := &app{environ: environ}

	root := &cobra.Command{
		Use:   "infoecon",
		Short: "Info-Theoretic Economic Simulator",
		Long: `Knowledge accumulation as entropy reduction.

Research shifts beliefs toward the hidden best production method, lowering
the entropy H(p) and raising the knowledge stock K = ln N - H(p). TFP, output
and wages grow with K; the time price falls. Produce turns current output
into money.

Without a subcommand the interactive simulator starts:
  r  research    p  produce    q  quit`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogging(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.closeFn != nil {
				_ = a.closeFn()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			econ, err := a.newEconomy(cmd)
			if err != nil {
				return err
			}
			return runTUI(econ, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	a.opts.register(root)
	root.AddCommand(newRunCmd(a), newParamsCmd(a))
	return root
}

// setupLogging installs a tint handler as the default logger. The TUI owns
// the terminal, so it logs only when --log-file is given.
func (a *app) setupLogging(cmd *cobra.Command) error {
	settings, err := loadEnvSettings(a.environ)
	if err != nil {
		return err
	}

	levelName := settings.LogLevel
	if cmd.Flags().Changed("log-level") {
		levelName = a.opts.logLevel
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return fmt.Errorf("log level %q: %w", levelName, err)
	}

	logFile := settings.LogFile
	if cmd.Flags().Changed("log-file") {
		logFile = a.opts.logFile
	}

	var w io.Writer = cmd.ErrOrStderr()
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w, a.closeFn = f, f.Close
	case cmd == cmd.Root():
		w = io.Discard
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
			NoColor:    logFile != "",
		}),
	))
	return nil
}

// newEconomy loads parameters and builds a fresh economy tagged with a run id.
func (a *app) newEconomy(cmd *cobra.Command) (*infoecon.Economy, error) {
	p, err := loadParams(cmd, &a.opts, a.environ)
	if err != nil {
		return nil, err
	}

	econ, err := infoecon.NewEconomy(p)
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("run", uuid.NewString())
	econ.SetLogger(logger)
	logger.Info("economy started", "methods", p.NumMethods, "research_rate", p.ResearchRate)
	return econ, nil
}

func environMap() map[string]string {
	m := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}
