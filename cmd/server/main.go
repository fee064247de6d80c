package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"samplehub/internal/config"
	"samplehub/internal/logging"
	"samplehub/internal/mail"
	"samplehub/internal/scheduler"
	"samplehub/internal/server"
	"samplehub/internal/service"
	"samplehub/internal/stats"
	"samplehub/internal/storage"
	"samplehub/internal/storage/providers"
	httptransport "samplehub/internal/transport/http"
)

func main() {
	cfg := config.MustLoad()
	logging.Setup(cfg.Env, cfg.Log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loc, err := cfg.Stats.Location()
	if err != nil {
		log.Fatalf("invalid stats timezone: %v", err)
	}

	db, err := storage.InitDB(cfg.DatabaseUrl, cfg.MaxConns)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	allProviders := providers.New(db)
	aggregator := stats.New(allProviders.SampleProvider,
		stats.WithLocation(loc),
		stats.WithWorkers(cfg.Stats.Workers),
	)

	if cfg.Mail.Host == "" {
		slog.Warn("smtp host not configured, report emails will fail")
	}

	sampleService := service.NewSampleService(allProviders.SampleProvider, allProviders.UserProvider, aggregator, time.Now)
	reportService := service.NewReportService(allProviders.SampleProvider, aggregator, mail.New(cfg.Mail), time.Now)

	scheduler.NewSampleScheduler(allProviders.SampleProvider, cfg.Scheduler.Interval, time.Now).Start(ctx)

	router := httptransport.Router(sampleService, reportService, cfg.JWT.Secret)

	slog.Info("starting samplehub", "env", cfg.Env, "port", cfg.Server.Port, "stats_workers", cfg.Stats.Workers, "timezone", loc.String())
	if err := server.Start(ctx, cfg.Server, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
