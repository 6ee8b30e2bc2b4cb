package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/prakashgarg91/Truck-Opti-sub001/internal/api"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/catalog"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/config"
	"github.com/prakashgarg91/Truck-Opti-sub001/internal/metrics"
)

func main() {
	cfg, err := config.Load(os.Getenv("TRUCKREC_CONFIG"))
	if err != nil {
		zap.NewExample().Fatal("config", zap.Error(err))
	}
	log := newLogger(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	trucks, err := catalog.LoadFile(cfg.Engine.CatalogPath)
	if err != nil {
		log.Fatal("load catalog", zap.Error(err))
	}
	log.Info("catalog loaded", zap.Int("trucks", len(trucks)), zap.String("path", cfg.Engine.CatalogPath))

	metrics.RegisterDefault()
	srv := api.NewServer(cfg, log, trucks)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/recommend", srv.RecommendHandler)
	mux.HandleFunc("/v1/algorithms", srv.AlgorithmsHandler)
	mux.HandleFunc("/v1/trucks", srv.TrucksHandler)
	mux.HandleFunc("/healthz", srv.HealthHandler)
	mux.HandleFunc("/readyz", srv.ReadyHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.AccessLog(mux),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("API listening", zap.String("addr", cfg.Server.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("stopped")
}

func newLogger(level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	_ = lvl.UnmarshalText([]byte(level))
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.EncoderConfig.TimeKey = "timestamp"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	log, err := zc.Build()
	if err != nil {
		return zap.NewExample()
	}
	return log
}
