package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"boostoracle/internal/attest"
	"boostoracle/internal/audit"
	"boostoracle/internal/engagement"
	"boostoracle/internal/ledger"
	"boostoracle/internal/offer"
	"boostoracle/internal/oracle"
	"boostoracle/internal/oracle/handler"
	"boostoracle/internal/oracle/metrics"
	"boostoracle/internal/platform/config"
	"boostoracle/internal/platform/httpserver"
	"boostoracle/internal/platform/logger"
	"boostoracle/internal/platform/middleware"
	"boostoracle/internal/socialindex"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	log := logger.New()
	slog.SetDefault(log)

	cfg, err := config.FromEnv()
	if err != nil {
		fatal(log, "invalid configuration", err)
	}

	ctx := context.Background()

	ledgerClient, err := ledger.Dial(ctx, cfg.LedgerRPCURL, cfg.ContractAddress)
	if err != nil {
		fatal(log, "ledger client init failed", err)
	}

	index, err := socialindex.NewClient(cfg.IndexBaseURL, cfg.IndexAPIKey)
	if err != nil {
		fatal(log, "social index client init failed", err)
	}

	reader, err := offer.NewReader(ledgerClient, index)
	if err != nil {
		fatal(log, "offer reader init failed", err)
	}

	locator, err := engagement.New(index,
		engagement.WithLogger(log),
		engagement.WithMaxPages(cfg.ScanMaxPages),
	)
	if err != nil {
		fatal(log, "engagement locator init failed", err)
	}

	signer, err := attest.NewSigner(cfg.AttestorKey)
	if err != nil {
		fatal(log, "attestor init failed", err)
	}

	var sink audit.Sink = audit.NewLogSink(log)
	if len(cfg.AuditBrokers) > 0 {
		kafkaSink, err := audit.NewKafkaSink(cfg.AuditBrokers, cfg.AuditTopic)
		if err != nil {
			fatal(log, "audit sink init failed", err)
		}
		defer kafkaSink.Close()
		sink = kafkaSink
	}

	svc, err := oracle.New(reader, locator, signer,
		oracle.WithLogger(log),
		oracle.WithMetrics(metrics.New()),
		oracle.WithAuditTrail(audit.NewPublisher(sink), signer.Address().Hex()),
	)
	if err != nil {
		fatal(log, "oracle service init failed", err)
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestID)
	handler.New(svc, log).Register(router)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting boost oracle",
		"addr", cfg.Addr,
		"attestor", signer.Address().Hex(),
		"contract", cfg.ContractAddress,
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fatal(log, "server error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fatal(log, "graceful shutdown failed", err)
	}
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
