package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexshd/infoecon"
)

// options holds the persistent flags shared by every command.
type options struct {
	configPath   string
	logLevel     string
	logFile      string
	methods      int
	researchRate float64
	best         int
	randomBest   bool
	seed         int64
}

// envSettings are the shell's own environment knobs; model parameters are
// read straight into infoecon.Params through its env tags.
type envSettings struct {
	LogLevel string `env:"INFOECON_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"INFOECON_LOG_FILE"`
}

func (o *options) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVarP(&o.configPath, "config", "c", "", "YAML parameter file")
	f.StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	f.StringVar(&o.logFile, "log-file", "", "write logs to this file (the TUI discards logs otherwise)")
	f.IntVar(&o.methods, "methods", 0, "number of candidate production methods")
	f.Float64Var(&o.researchRate, "research-rate", 0, "growth of the best weight per research turn")
	f.IntVar(&o.best, "best", 0, "hidden best method index")
	f.BoolVar(&o.randomBest, "random-best", false, "draw the best method at random")
	f.Int64Var(&o.seed, "seed", 0, "seed for --random-best (random if unset)")
}

// loadParams layers defaults, the YAML file, the environment and explicitly
// set flags, in that order, then validates the result.
func loadParams(cmd *cobra.Command, o *options, environ map[string]string) (infoecon.Params, error) {
	p := infoecon.DefaultParams()

	if o.configPath != "" {
		if err := readParamsFile(o.configPath, &p); err != nil {
			return p, err
		}
	}

	if err := env.ParseWithOptions(&p, env.Options{Environment: environ}); err != nil {
		return p, fmt.Errorf("parse env: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("methods") {
		p.NumMethods = o.methods
	}
	if flags.Changed("research-rate") {
		p.ResearchRate = o.researchRate
	}
	if flags.Changed("best") {
		p.BestMethod = o.best
	}

	if o.randomBest {
		if flags.Changed("best") {
			return p, errors.New("--best and --random-best are mutually exclusive")
		}
		seed := o.seed
		if !flags.Changed("seed") {
			var err error
			if seed, err = newSeed(); err != nil {
				return p, err
			}
		}
		p.BestMethod = infoecon.RandomBestMethod(p.NumMethods, seed)
		slog.Debug("best method drawn", "seed", seed)
	}

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

func readParamsFile(path string, p *infoecon.Params) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return decodeParams(f, p)
}

// decodeParams overlays the YAML document on p. Unknown keys are rejected.
func decodeParams(r io.Reader, p *infoecon.Params) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

func loadEnvSettings(environ map[string]string) (envSettings, error) {
	var s envSettings
	if err := env.ParseWithOptions(&s, env.Options{Environment: environ}); err != nil {
		return s, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// newSeed draws a seed from crypto/rand for runs without --seed.
func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
