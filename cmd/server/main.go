package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"nbfc-gateway/internal/audit"
	auditHandler "nbfc-gateway/internal/audit/handler"
	"nbfc-gateway/internal/bureau"
	bureauHandler "nbfc-gateway/internal/bureau/handler"
	"nbfc-gateway/internal/catalog"
	"nbfc-gateway/internal/customer"
	customerHandler "nbfc-gateway/internal/customer/handler"
	"nbfc-gateway/internal/document"
	documentHandler "nbfc-gateway/internal/document/handler"
	"nbfc-gateway/internal/kyc"
	kycHandler "nbfc-gateway/internal/kyc/handler"
	"nbfc-gateway/internal/platform/config"
	"nbfc-gateway/internal/platform/httpserver"
	"nbfc-gateway/internal/platform/logger"
	platformMetrics "nbfc-gateway/internal/platform/metrics"
	"nbfc-gateway/internal/platform/middleware"
	platformRedis "nbfc-gateway/internal/platform/redis"
	"nbfc-gateway/internal/underwriting"
	uwHandler "nbfc-gateway/internal/underwriting/handler"
	uwMetrics "nbfc-gateway/internal/underwriting/metrics"
)

// main wires dependencies and runs the server plus the audit worker.
// Business logic lives in the internal feature packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	// Stores and infrastructure.
	directory := customer.NewInMemoryDirectory()

	auditStore, err := audit.NewFileStore(cfg.StorageDir)
	if err != nil {
		log.Error("audit store init failed", "error", err)
		os.Exit(1)
	}
	auditInbox := make(audit.Inbox, cfg.AuditBuffer)
	auditWorker := audit.NewWorker(auditStore, auditInbox, log)
	auditPublisher := audit.NewPublisher(auditStore)

	docStore, err := document.NewFSStore(cfg.StorageDir)
	if err != nil {
		log.Error("document store init failed", "error", err)
		os.Exit(1)
	}

	redisClient, err := platformRedis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}
	var scoreCache bureau.Cache
	if redisClient != nil {
		scoreCache = bureau.NewRedisCache(redisClient)
		defer redisClient.Close()
	}

	// Services.
	bureauSvc := bureau.NewService(directory, scoreCache, cfg.ScoreCacheTTL, log)
	kycSvc := kyc.NewService(directory, auditInbox, log)
	docSvc := document.NewService(directory, docStore, auditInbox, log)
	uwSvc := underwriting.NewService(directory, bureauSvc, auditInbox, log, uwMetrics.New())

	// Router.
	httpMetrics := platformMetrics.New()
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Metrics(httpMetrics))

	catalog.NewHandler().Register(r)
	customerHandler.New(directory, log).Register(r)
	kycHandler.New(kycSvc, log).Register(r)
	bureauHandler.New(bureauSvc, log).Register(r)
	uwHandler.New(uwSvc, log).Register(r)
	documentHandler.New(docSvc, docStore, log).Register(r)
	auditHandler.New(auditPublisher, log).Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting nbfc-gateway", "addr", cfg.Addr, "storage_dir", cfg.StorageDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := auditWorker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("gateway exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("gateway stopped")
}
