package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"utube/internal/config"
	"utube/internal/indexer"
	"utube/internal/infra/database"
	infraES "utube/internal/infra/elasticsearch"
	infraKafka "utube/internal/infra/kafka"
	"utube/internal/repository"
	"utube/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	reindex := flag.Bool("reindex", false, "rebuild the video index from the database before consuming")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Options(cfg.App.Name+"-indexer", cfg.App.Version)); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if !cfg.Elasticsearch.Enabled() {
		logger.Fatal("Search indexer requires elasticsearch.hosts")
	}
	if !cfg.Kafka.Enabled() {
		logger.Fatal("Search indexer requires kafka.brokers and kafka.activity_topic")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	es, err := infraES.New(&cfg.Elasticsearch)
	if err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	if err := es.EnsureVideoIndex(ctx); err != nil {
		logger.Fatal("Failed to ensure video index", zap.Error(err))
	}

	ix := indexer.New(es)

	if *reindex {
		db, err := database.Open(&cfg.Database)
		if err != nil {
			logger.Fatal("Failed to init database", zap.Error(err))
		}
		if _, err := ix.Reindex(ctx, repository.NewVideoRepository(db)); err != nil {
			logger.Error("Reindex failed", zap.Error(err))
		}
		if err := database.Close(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}

	logger.Info("Search indexer started",
		zap.String("index", es.Index()),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	infraKafka.Consume(ctx, &cfg.Kafka, ix.Handle)

	logger.Info("Search indexer stopped")
}
