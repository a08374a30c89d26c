package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/goliatone/go-madlib/internal/config"
	"github.com/goliatone/go-madlib/internal/logging"
	"github.com/goliatone/go-madlib/internal/session"
	"github.com/goliatone/go-madlib/pkg/library"
	"github.com/goliatone/go-madlib/pkg/prompt"
	"github.com/goliatone/go-madlib/pkg/render"
)

func main() {
	var (
		configFlag   = flag.String("config", config.DefaultFile, "Path to a YAML config file")
		dirFlag      = flag.String("dir", "", "Template directory (overrides config)")
		driverFlag   = flag.String("driver", "", "Input driver: auto, line or survey")
		templateFlag = flag.String("template", "", "Play this template first (fuzzy matched)")
		seedFlag     = flag.Bool("seed", false, "Populate a newly created template directory with samples")
		logLevelFlag = flag.String("log-level", "", "Log level (debug, info, warn, error)")
		noColorFlag  = flag.Bool("no-color", false, "Disable styled output")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fatal(err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		fatal(err)
	}
	applyFlags(&cfg, *dirFlag, *driverFlag, *logLevelFlag, *seedFlag, *noColorFlag)
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *templateFlag, logger); err != nil {
		logger.Error().Err(err).Msg("game ended with an error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, initial string, logger zerolog.Logger) error {
	libOpts := []library.Option{library.WithLogger(logger)}
	if cfg.SeedSamples {
		libOpts = append(libOpts, library.WithSeed(library.Samples()))
	}
	lib := library.New(cfg.TemplatesDir, libOpts...)

	presenter, err := render.NewPresenter(render.WithOutputTemplate(cfg.OutputTemplate))
	if err != nil {
		return err
	}

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithTheme(session.NewTheme(cfg.Color)),
		session.WithPresenter(presenter),
		session.WithCollectorOptions(prompt.WithPromptFormat(cfg.PromptFormat)),
	}

	if initial != "" {
		opts = append(opts, session.WithInitialTemplate(initial))
	}

	err = session.New(lib, newDriver(cfg.Driver), opts...).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newDriver(name string) prompt.Driver {
	switch name {
	case config.DriverSurvey:
		return prompt.NewSurveyDriver()
	case config.DriverLine:
		return prompt.NewLineDriver(os.Stdin, os.Stdout)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return prompt.NewSurveyDriver()
	}
	return prompt.NewLineDriver(os.Stdin, os.Stdout)
}

func applyFlags(cfg *config.Config, dir, driver, level string, seed, noColor bool) {
	if dir != "" {
		cfg.TemplatesDir = dir
	}
	if driver != "" {
		cfg.Driver = driver
	}
	if level != "" {
		cfg.LogLevel = level
	}
	if seed {
		cfg.SeedSamples = true
	}
	if noColor {
		cfg.Color = false
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(2)
}
