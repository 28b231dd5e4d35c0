package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	gorm_mysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/wyfcoding/optionpricing/internal/montecarlo/application"
	"github.com/wyfcoding/optionpricing/internal/montecarlo/domain"
	"github.com/wyfcoding/optionpricing/internal/montecarlo/infrastructure/persistence/mysql"
	"github.com/wyfcoding/optionpricing/internal/montecarlo/infrastructure/publisher"
	"github.com/wyfcoding/optionpricing/internal/montecarlo/infrastructure/storage"
	httphandler "github.com/wyfcoding/optionpricing/internal/montecarlo/interfaces/http"
	"github.com/wyfcoding/optionpricing/pkg/config"
	"github.com/wyfcoding/optionpricing/pkg/logger"
	"github.com/wyfcoding/optionpricing/pkg/metrics"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "configs/pricingserver/config.toml", "path to config file")
	flag.Parse()

	// 1. Config
	cfg, err := config.Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("load config failed: %v", err))
	}

	// 2. Logger
	if err := logger.Init(cfg.Logger); err != nil {
		panic(fmt.Sprintf("init logger failed: %v", err))
	}
	ctx := context.Background()
	logger.Info(ctx, "starting pricing server", "service", cfg.ServiceName, "env", cfg.Environment)

	// 3. Metrics
	m := metrics.New(cfg.ServiceName)
	if cfg.Metrics.Enabled {
		if err := m.Register(); err != nil {
			logger.Fatal(ctx, "register metrics failed", "error", err)
		}
	}

	// 4. Infrastructure（仓储、事件发布、结果交付均为可选协作方）
	var repo domain.PricingRunRepository
	if cfg.Database.DSN != "" {
		db, err := gorm.Open(gorm_mysql.Open(cfg.Database.DSN), &gorm.Config{})
		if err != nil {
			logger.Fatal(ctx, "connect db failed", "error", err)
		}
		if err := db.AutoMigrate(&mysql.PricingRunModel{}); err != nil {
			logger.Fatal(ctx, "migrate db failed", "error", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal(ctx, "get sql db failed", "error", err)
		}
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		repo = mysql.NewPricingRunRepository(db)
	}

	var resultPublisher domain.ResultPublisher
	var kafkaPublisher *publisher.KafkaResultPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher = publisher.NewKafkaResultPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		resultPublisher = kafkaPublisher
	}

	var sink domain.ResultSink
	if cfg.Storage.Endpoint != "" {
		minioSink, err := storage.NewMinIOResultSink(
			cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey,
			cfg.Storage.Bucket, cfg.Storage.Prefix, cfg.Storage.UseSSL)
		if err != nil {
			logger.Fatal(ctx, "init minio sink failed", "error", err)
		}
		sink = minioSink
	}

	// 5. Application & Interfaces
	appService := application.NewPricingApplicationService(repo, resultPublisher, sink, m)

	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	httphandler.NewHandler(engine, appService,
		cfg.Simulation.RiskFreeRate, cfg.Simulation.Maturity, cfg.Simulation.MaxPaths)
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   cfg.ServiceName,
			"timestamp": time.Now().Unix(),
		})
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	// 6. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info(ctx, "http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if cfg.Metrics.Enabled {
		g.Go(func() error {
			return metrics.StartHTTPServer(cfg.Metrics.Port, cfg.Metrics.Path)
		})
	}
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-quit:
			logger.Info(ctx, "shutting down", "signal", sig.String())
		case <-gctx.Done():
			return gctx.Err()
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if kafkaPublisher != nil {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Error(ctx, "close kafka publisher failed", "error", err)
			}
		}
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal(ctx, "server exited with error", "error", err)
	}
	logger.Info(ctx, "server stopped")
}
