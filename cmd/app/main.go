package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	apiHttp "github.com/kaustubh03-ks/covid-19-analysis/internal/api/http"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/cache"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/config"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/db"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/queue/asynqserver"
	queueclient "github.com/kaustubh03-ks/covid-19-analysis/internal/queue/client"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/repository"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/server"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/service"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/watcher"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/worker"
	"github.com/kaustubh03-ks/covid-19-analysis/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting covid-19 dashboard", zap.String("env", cfg.Env), zap.String("source", cfg.Dataset.Source))
	logger.Debug("debug messages are enabled")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Dataset source
	var source repository.Source
	switch cfg.Dataset.Source {
	case config.SourceMySQL:
		dbMySQL, err := db.New(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("mysql connect problem", zap.Error(err))
		}
		defer func() {
			if err := dbMySQL.Close(); err != nil {
				logger.Error("error when closing mysql", zap.Error(err))
			}
		}()
		logger.Info("mysql connection done")
		source = repository.NewObservationRepository(dbMySQL)
	default:
		source = repository.NewCSVSource(cfg.Dataset.Path)
	}
	store := repository.NewStore(source)

	// Chart cache
	charts := cache.NewMemoryCharts(256)
	if cfg.Cache.Type != "" {
		rdb, err := cache.NewRedis(cfg.Cache)
		if err != nil {
			logger.Fatal("redis connect problem", zap.Error(err))
		}
		defer rdb.Close()
		charts = cache.NewRedisCharts(rdb, cfg.Cache.TTL)
		logger.Info("redis connection done")
	}

	// Export queue
	var queue service.Enqueuer
	var tasks service.TaskInspector
	if cfg.Export.Enabled {
		asynqClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
		defer asynqClient.Close()
		restore := queueclient.SetClient(asynqClient)
		defer restore()
		queue = queueclient.Global{}

		inspector := asynq.NewInspector(asynqserver.RedisOptions(cfg.Cache))
		defer inspector.Close()
		tasks = inspector
	}

	// Services & dataset
	services := service.NewServices(service.Deps{
		Config:     cfg,
		Store:      store,
		ChartCache: charts,
		Queue:      queue,
		Tasks:      tasks,
	})
	if err := services.Dataset.Reload(ctx); err != nil {
		logger.Fatal("load dataset failed", zap.Error(err))
	}

	var asynqSrv *asynq.Server
	if cfg.Export.Enabled {
		workers := worker.NewWorkers(worker.Deps{Services: services, Config: cfg})
		var mux *asynq.ServeMux
		asynqSrv, mux = asynqserver.New(cfg, workers)
		if err := asynqSrv.Start(mux); err != nil {
			logger.Fatal("asynq server start failed", zap.Error(err))
		}
		logger.Info("export worker started", zap.Int("concurrency", cfg.Export.Concurrency))
	}

	if cfg.Dataset.Watch && cfg.Dataset.Source == config.SourceCSV {
		w, err := watcher.New(cfg.Dataset.Path, services.Dataset, watcher.DefaultDebounce)
		if err != nil {
			logger.Error("dataset watcher disabled", zap.Error(err))
		} else {
			go w.Run(ctx)
			logger.Info("watching dataset", zap.String("path", cfg.Dataset.Path))
		}
	}

	// HTTP Server
	handlers := apiHttp.NewHandlers(services, cfg)
	srv := server.NewServer(cfg.HttpServer, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatal("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit
	cancel()

	const timeout = 5 * time.Second

	shutdownCtx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}
	if asynqSrv != nil {
		asynqSrv.Shutdown()
	}

	logger.Info("app stopped")
}
