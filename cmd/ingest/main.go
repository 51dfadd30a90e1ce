package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/kailas-cloud/supportdesk/internal/app"
	"github.com/kailas-cloud/supportdesk/internal/config"
	logpkg "github.com/kailas-cloud/supportdesk/internal/logger"
	"github.com/kailas-cloud/supportdesk/internal/version"
)

func main() {
	var (
		configPath string
		batchSize  int
		quiet      bool
		showVer    bool
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (default: config/$ENV.yaml)")
	flag.IntVar(&batchSize, "batch-size", 0, "Texts per embedding request (overrides embedding.batch_size)")
	flag.BoolVar(&quiet, "quiet", false, "Disable the progress bar")
	flag.BoolVar(&showVer, "version", false, "Print version and exit")
	flag.Parse()

	if showVer {
		fmt.Println("supportdesk-ingest", version.String())
		return
	}

	if err := run(configPath, batchSize, quiet); err != nil {
		color.Red("Ingestion failed: %v", err)
		os.Exit(1)
	}
}

func run(configPath string, batchSize int, quiet bool) error {
	_ = godotenv.Load()
	env := config.GetEnv()

	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load(env)
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if batchSize > 0 {
		cfg.Embedding.BatchSize = batchSize
	}

	logger, err := logpkg.NewLogger(env, logpkg.Options{
		Level:      cfg.Logging.Level,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting ingestion",
		zap.String("version", version.Version),
		zap.String("env", env),
		zap.String("store_driver", cfg.Store.Driver),
		zap.String("model", cfg.Embedding.Model),
		zap.Int("batch_size", cfg.Embedding.BatchSize),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ing, err := app.NewIngest(ctx, cfg, logger)
	if err != nil {
		return err //nolint:wrapcheck // already descriptive
	}
	defer ing.Close()

	color.Blue("\nEmbedding products and policies into %s store\n", cfg.Store.Driver)

	var bar *progressbar.ProgressBar
	if !quiet {
		ing.Pipeline.WithProgress(func(done, total int) {
			if bar == nil {
				bar = getProgressBar(total, "Embedding documents...")
			}
			_ = bar.Set(done)
		})
	}

	report, err := ing.Pipeline.Run(ctx)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("run pipeline: %w", err)
	}

	color.Green("\nStored %d documents (%d dimensions, %d tokens) in %s\n",
		report.Documents, report.Dimensions, report.TotalTokens, report.Duration.Round(1e6))
	return nil
}

func getProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("docs"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}
