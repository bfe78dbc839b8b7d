package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/config"
	infraLogger "github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/logger"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/reference"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/scanner"
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/scoring"
)

const usage = `usage: scanner <command> [flags]

commands:
  serve   run the HTTP API (default)
  scan    score titles from a file and print JSON results
  token   mint a bearer token for the HTTP API
`

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	command, args := "serve", os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		command, args = args[0], args[1:]
	}

	var err error
	switch command {
	case "serve":
		err = runServe(args)
	case "scan":
		err = runScan(args, os.Stdout)
	case "token":
		err = runToken(args, os.Stdout)
	case "help":
		fmt.Print(usage)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil && !errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// engine is everything a command needs to score titles.
type engine struct {
	cfg       *config.Config
	logger    *logrus.Logger
	reference *reference.Set
	scorer    *scoring.TitleScorer
	scanner   *scanner.BatchScanner
	close     func()
}

func bootstrap(configPath string, logOpts infraLogger.Options) (*engine, error) {
	if err := config.Load(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.GetConfig()

	if logOpts.Level == "" {
		logOpts.Level = cfg.Log.Level
	}
	if logOpts.File == "" {
		logOpts.File = cfg.Log.File
	}
	logger, closeLog, err := infraLogger.NewLogger(logOpts)
	if err != nil {
		return nil, err
	}

	set, err := reference.Load(context.Background(), cfg, logger)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("invalid reference set: %w", err)
	}

	scorer, err := scoring.NewTitleScorer(set.Keywords, set.Severity, set.Phrases, cfg.Scoring.Config)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}

	opts := []scanner.Option{}
	if cfg.Scoring.Workers > 0 {
		opts = append(opts, scanner.WithWorkers(cfg.Scoring.Workers))
	}

	return &engine{
		cfg:       cfg,
		logger:    logger,
		reference: set,
		scorer:    scorer,
		scanner:   scanner.New(scorer, opts...),
		close:     closeLog,
	}, nil
}
