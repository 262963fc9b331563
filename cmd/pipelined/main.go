package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"listing_pipeline/internal/classifier"
	"listing_pipeline/internal/config"
	"listing_pipeline/internal/dedupe"
	"listing_pipeline/internal/events"
	"listing_pipeline/internal/grouping"
	"listing_pipeline/internal/jobs"
	"listing_pipeline/internal/marketplace"
	"listing_pipeline/internal/quota"
	"listing_pipeline/internal/server"
	"listing_pipeline/internal/service"
	"listing_pipeline/internal/storage/postgres"
	"listing_pipeline/internal/token"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := events.NewRabbitMQ(events.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	draftStore := postgres.NewDraftStore(db)
	ledgerStore := postgres.NewLedgerStore(db)
	txManager := postgres.NewTransactionManager(db)

	classifierClient := classifier.New(classifier.Config{
		BaseURL:        cfg.Classifier.BaseURL,
		Timeout:        cfg.Classifier.Timeout,
		MaxAttempts:    cfg.Classifier.Retry.MaxAttempts,
		InitialBackoff: cfg.Classifier.Retry.InitialBackoff,
		MaxBackoff:     cfg.Classifier.Retry.MaxBackoff,
	}, logger)

	marketplaceClient := marketplace.New(marketplace.Config{
		BaseURL: cfg.Marketplace.BaseURL,
		Timeout: cfg.Marketplace.Timeout,
	}, logger)

	var quotaChecker service.QuotaChecker
	if cfg.Quota.BaseURL != "" {
		quotaChecker = quota.New(quota.Config{
			BaseURL: cfg.Quota.BaseURL,
			Timeout: cfg.Quota.Timeout,
		}, logger)
	}

	grouper := grouping.New(classifierClient, grouping.Config{
		BatchLimit:        cfg.Classifier.BatchLimit,
		FallbackGroupSize: cfg.Pipeline.FallbackGroupSize,
		FoldMaxPhotos:     cfg.Pipeline.FoldMaxPhotos,
	}, logger)

	deduplicator := dedupe.New(cfg.Pipeline.SimilarityThreshold, logger)
	registry := jobs.NewRegistry()
	signer := token.NewSigner(cfg.Publish.TokenSecret, cfg.Publish.TokenTTL)

	draftService := service.NewDraftService(draftStore, txManager, deduplicator, logger)
	pipelineService := service.NewPipelineService(registry, grouper, draftService, quotaChecker, rabbitMQ, logger)
	publishService := service.NewPublishService(
		draftStore,
		ledgerStore,
		signer,
		marketplaceClient,
		rabbitMQ,
		service.QualityGate{
			TitleMaxLen: cfg.Publish.TitleMaxLen,
			HashtagMin:  cfg.Publish.HashtagMin,
			HashtagMax:  cfg.Publish.HashtagMax,
		},
		logger,
	)

	httpServer := server.New(cfg.Server, pipelineService, draftService, publishService, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting listing pipeline",
		"addr", cfg.Server.Addr,
		"classifier", cfg.Classifier.BaseURL,
		"marketplace", cfg.Marketplace.BaseURL,
	)

	if err := httpServer.Run(ctx); err != nil {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
