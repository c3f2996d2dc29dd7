package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/c4flow/studio-service/internal/api"
	"github.com/c4flow/studio-service/internal/config"
	"github.com/c4flow/studio-service/internal/notify"
	"github.com/c4flow/studio-service/internal/redisx"
	"github.com/c4flow/studio-service/internal/repository"
	"github.com/c4flow/studio-service/internal/service"
	"github.com/c4flow/studio-service/pkg/db"
	logx "github.com/c4flow/studio-service/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("load config")
	}
	logx.Init(logx.LoggerOpts{Environment: cfg.Environment(), Service: cfg.ServiceName})

	loc, err := cfg.Location()
	if err != nil {
		logx.Fatal().Err(err).Msg("site timezone")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.NewPostgresConnection(ctx, cfg.Postgres)
	if err != nil {
		logx.Fatal().Err(err).Msg("db connect")
	}
	defer conn.Close()

	rdb, err := cfg.Redis.New(ctx)
	if err != nil {
		logx.Fatal().Err(err).Msg("redis connect")
	}
	defer rdb.Close()

	publisher := notify.NewPublisher(cfg.Kafka, cfg.ServiceName, notify.EmailSettings{
		SiteName:   cfg.SiteName,
		From:       cfg.Contact.From,
		Recipients: cfg.Contact.Recipients,
		ReplyTo:    cfg.Contact.ReplyTo,
	})
	defer publisher.Close()

	site := service.NewSiteService(
		repository.NewCatalogRepo(conn),
		repository.NewPromotionRepo(conn),
		repository.NewScheduleRepo(conn),
		cfg.BookingURL,
		loc,
	)
	contact := service.NewContactService(
		repository.NewContactRepo(conn),
		publisher,
		redisx.NewLimiter(rdb, cfg.Contact.RateLimit, cfg.Contact.RateWindow),
		redisx.NewIdempotency(rdb),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      api.NewRouter(site, contact),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logx.Error().Err(err).Msg("HTTP server shutdown")
		}
		close(idleConnsClosed)
	}()

	logx.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.Environment().String()).Msg("starting studio-service")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logx.Fatal().Err(err).Msg("listen")
	}

	<-idleConnsClosed
	logx.Info().Msg("server stopped")
}
