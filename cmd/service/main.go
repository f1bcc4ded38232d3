package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"demo/ordermanager/internal/config"
	"demo/ordermanager/internal/events"
	"demo/ordermanager/internal/httpapi"
	"demo/ordermanager/internal/logger"
	"demo/ordermanager/internal/service"
	"demo/ordermanager/internal/store"
)

//go:embed web
var webFS embed.FS

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db connect", "error", err)
	}
	defer pool.Close()

	if err := store.Bootstrap(ctx, pool); err != nil {
		log.Fatal("schema bootstrap", "error", err)
	}
	log.Info("database ready")

	orders := store.NewOrders(pool)
	products := store.NewProducts(pool)

	var sink service.EventSink
	if cfg.EventsEnabled() {
		pub := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		defer func() { _ = pub.Close() }()
		sink = pub
		log.Info("event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	svc := service.New(orders, products, sink, log)
	handler := httpapi.NewHandler(svc, log, cfg.Production())

	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		log.Fatal("embed fs", "error", err)
	}

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Handler:     handler,
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
		Production:  cfg.Production(),
		StaticFS:    sub,
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server", "error", err)
		}
	}()

	<-ctx.Done()

	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shCtx)
	log.Info("shutdown complete")
}
