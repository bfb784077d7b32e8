package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sheetreport/internal/config"
	"sheetreport/internal/demo"
	"sheetreport/internal/events"
	"sheetreport/internal/infrastructure"
	"sheetreport/pkg/contracts"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("demo", flag.ContinueOnError)
	outputDir := flags.String("output", "", "directory for generated workbooks (defaults to the configured output dir)")
	keepOutput := flags.Bool("keep-output", false, "keep generated workbooks and reports instead of deleting them")
	showVersion := flags.Bool("version", false, "print version information and exit")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if *outputDir != "" {
		cfg.Paths.OutputDir = *outputDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	paths, err := config.NewPaths(cfg.Paths)
	if err != nil {
		logger.Error("Failed to resolve paths", slog.String("error", err.Error()))
		return 1
	}
	paths.LogPathResolution(logger)

	providers, err := infrastructure.InitializeOTel(infrastructure.NewOTelConfig(cfg.Telemetry), logger)
	if err != nil {
		logger.Error("Failed to initialize OpenTelemetry", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(ctx); err != nil {
			logger.Warn("OpenTelemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	metrics, err := infrastructure.CreateBusinessMetrics(providers.Meter)
	if err != nil {
		logger.Warn("Failed to create business metrics", slog.String("error", err.Error()))
		metrics = nil
	}

	publisher := events.NewPublisher(cfg.Events, metrics, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", slog.String("error", err.Error()))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.InfoContext(ctx, "Starting sheetreport demo",
		slog.String("version", contracts.GetFullVersionString()),
		slog.String("output_dir", paths.OutputDir),
		slog.Bool("keep_output", *keepOutput),
		slog.Bool("events_enabled", cfg.Events.Enabled()))

	runner := demo.NewRunner(demo.NewDependencies(paths, publisher, metrics, logger), demo.Options{
		KeepOutput: *keepOutput,
	})
	if err := runner.Run(ctx); err != nil {
		logger.ErrorContext(ctx, "Demo finished with errors", slog.String("error", err.Error()))
		return 1
	}
	return 0
}
