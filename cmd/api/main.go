package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"utube/internal/api/handler"
	"utube/internal/api/middleware"
	"utube/internal/api/router"
	"utube/internal/config"
	"utube/internal/infra/database"
	infraES "utube/internal/infra/elasticsearch"
	infraKafka "utube/internal/infra/kafka"
	infraMinio "utube/internal/infra/minio"
	infraRedis "utube/internal/infra/redis"
	"utube/internal/metrics"
	"utube/internal/repository"
	"utube/internal/service"
	"utube/pkg/logger"

	_ "utube/api/openapi"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title UTube API
// @version 1.0
// @description 视频分享平台 REST API
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	flag.Parse()

	// 加载配置文件
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(cfg.Log.Options(cfg.App.Name+"-api", cfg.App.Version)); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Open(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			logger.Fatal("Failed to auto migrate", zap.Error(err))
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get sql.DB", zap.Error(err))
	}
	if err := metrics.RegisterDB(sqlDB, cfg.Database.DBName); err != nil {
		logger.Warn("Failed to register db metrics", zap.Error(err))
	}

	// Redis：登录限流（可选）
	var loginLimiter middleware.Limiter
	if cfg.Redis.Enabled() {
		rdb, err := infraRedis.New(&cfg.Redis)
		if err != nil {
			logger.Warn("Redis init failed, login throttle disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			loginLimiter = infraRedis.NewLoginLimiter(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindowDuration())
		}
	}

	// Kafka：活动事件（可选）
	var events service.EventPublisher
	if cfg.Kafka.Enabled() {
		producer := infraKafka.NewProducer(&cfg.Kafka)
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Warn("Failed to close kafka producer", zap.Error(err))
			}
		}()
		events = producer
	}

	// MinIO：视频封面（可选）
	var store service.ObjectStore
	if cfg.MinIO.Enabled() {
		s, err := infraMinio.New(&cfg.MinIO)
		if err != nil {
			logger.Warn("MinIO init failed, thumbnail uploads disabled", zap.Error(err))
		} else {
			store = s
		}
	}

	// Elasticsearch（可选，失败则搜索降级到 DB）
	var searcher service.VideoSearcher
	if cfg.Elasticsearch.Enabled() {
		es, err := infraES.New(&cfg.Elasticsearch)
		if err != nil {
			logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
		} else {
			if err := es.EnsureVideoIndex(context.Background()); err != nil {
				logger.Warn("Elasticsearch index init failed", zap.Error(err))
			}
			searcher = es
		}
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 初始化依赖（Repository -> Service -> Handler）
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewVideoLikeRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	viewRepo := repository.NewViewRepository(db)

	userService := service.NewUserService(userRepo, videoRepo, subRepo, events, cfg.Auth.BcryptCost)
	authService := service.NewAuthService(userService, &cfg.JWT)
	videoService := service.NewVideoService(videoRepo, userRepo, likeRepo, viewRepo, commentRepo, events, store)
	searchService := service.NewSearchService(videoRepo, searcher)
	commentService := service.NewCommentService(commentRepo, userRepo, videoRepo, events)
	likeService := service.NewVideoLikeService(likeRepo, userRepo, videoRepo, events)
	subscriptionService := service.NewSubscriptionService(subRepo, userRepo, events)
	viewService := service.NewViewService(viewRepo, userRepo, videoRepo, events)

	r := router.New(&cfg.JWT, loginLimiter, router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(userService, authService),
		Video:        handler.NewVideoHandler(videoService, searchService),
		Comment:      handler.NewCommentHandler(commentService),
		Like:         handler.NewLikeHandler(likeService),
		Subscription: handler.NewSubscriptionHandler(subscriptionService),
		View:         handler.NewViewHandler(viewService),
		Health:       handler.NewHealthHandler(&cfg.App, sqlDB),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.Bool("redis", loginLimiter != nil),
		zap.Bool("kafka", events != nil),
		zap.Bool("minio", store != nil),
		zap.Bool("elasticsearch", searcher != nil),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
}
