package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"freqtrie"
	"freqtrie/internal/config"
	"freqtrie/internal/dictionary"
)

type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger zerolog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "freqdict",
		Short:        "Build word frequency dictionaries from text files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(
		newCountCommand(a),
		newLookupCommand(a),
		newCompleteCommand(a),
		newWithoutCommand(a),
	)
	return root
}

// setup loads the configuration and the logger.
func (a *app) setup() error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Log.Pretty {
		a.logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	} else {
		a.logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	a.logger = a.logger.Level(cfg.Log.LogLevel())
	return nil
}

// build reads every file in paths into one dictionary.
func (a *app) build(ctx context.Context, paths []string) (freqtrie.Trie, error) {
	sources := make([]dictionary.Source, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		sources = append(sources, dictionary.Source{Name: path, Reader: f})
	}

	return a.builder().Build(ctx, sources...)
}

func (a *app) builder() *dictionary.Builder {
	return dictionary.NewBuilder(dictionary.Options{
		MinLength: a.cfg.Tokenize.MinLength,
		FoldCase:  a.cfg.Tokenize.FoldCase,
		Normalize: a.cfg.Tokenize.Normalize,
		Workers:   a.cfg.Build.Workers,
		Logger:    &a.logger,
	})
}
