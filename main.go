package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jeomhps/hotel-bookings/api-go/internal/config"
	"github.com/Jeomhps/hotel-bookings/api-go/internal/handlers"
	"github.com/Jeomhps/hotel-bookings/api-go/internal/logging"
	"github.com/Jeomhps/hotel-bookings/api-go/internal/seed"
	"github.com/Jeomhps/hotel-bookings/api-go/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Seed once; nothing is written back.
	initial, from, err := seed.Load(ctx, seed.Source{
		Driver: cfg.SeedDBDriver,
		DSN:    cfg.SeedDSN(),
		File:   cfg.SeedFile,
	})
	if err != nil {
		logger.Fatal("seed bookings", zap.Error(err))
	}
	st := store.New(initial)
	logger.Info("bookings seeded", zap.String("source", from), zap.Int("count", st.Len()))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := handlers.NewRouter(st, handlers.Options{
		Logger:          logger,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()
		sctx, scancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer scancel()
		if err := srv.Shutdown(sctx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", cfg.Addr()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("listen", zap.Error(err))
	}
	<-drained
	logger.Info("server exiting gracefully")
}
