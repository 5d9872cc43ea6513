package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/averyhall/classroom-finder-go/internal/agent"
	"github.com/averyhall/classroom-finder-go/internal/classroom"
	"github.com/averyhall/classroom-finder-go/internal/config"
	"github.com/averyhall/classroom-finder-go/internal/contacts"
	"github.com/averyhall/classroom-finder-go/internal/logger"
	"github.com/averyhall/classroom-finder-go/internal/maps"
	"github.com/averyhall/classroom-finder-go/internal/metrics"
	"github.com/averyhall/classroom-finder-go/internal/nlu"
	"github.com/averyhall/classroom-finder-go/internal/rank"
	"github.com/averyhall/classroom-finder-go/internal/sentry"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	log.Info("Starting classroom finder server")

	// Error reporting (disabled without a DSN)
	if err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     cfg.SentryRelease,
		SampleRate:  cfg.SentrySampleRate,
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize Sentry, continuing without error reporting")
	} else if sentry.IsEnabled() {
		defer sentry.Flush(2 * time.Second)
		log.Info("Sentry error reporting enabled")
	}

	// Contact directory, loaded once and immutable afterwards
	directory, err := contacts.Load(cfg.ContactsPath)
	if err != nil {
		log.WithError(err).WithField("path", cfg.ContactsPath).Fatal("Failed to load contact directory")
	}
	log.WithField("contacts", directory.Len()).Info("Contact directory loaded")

	// Prometheus registry with standard collectors
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())
	m := metrics.New(registry)
	log.Info("Metrics initialized")

	// Upstream clients
	backend := classroom.NewClient(cfg.BackendURL, cfg.BackendTimeout, cfg.BackendMaxRetries, m)
	mapsClient := maps.NewClient(cfg.MapsBaseURL, cfg.GoogleMapsAPIKey, cfg.MapsTimeout, m)
	if !mapsClient.Enabled() {
		log.Warn("Google Maps API key not configured, distance features disabled")
	}
	ranker := rank.New(mapsClient, cfg.DefaultCampus, log)

	// Optional NLU intent parsing
	ctx := context.Background()
	parser, err := nlu.NewFallbackParser(ctx, nlu.Config{
		Providers:    cfg.LLMProviders,
		GeminiAPIKey: cfg.GeminiAPIKey,
		GeminiModel:  cfg.GeminiModel,
		GroqAPIKey:   cfg.GroqAPIKey,
		GroqModel:    cfg.GroqModel,
	}, m, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize intent parser")
	}
	var intentParser nlu.IntentParser
	if parser != nil {
		intentParser = parser
		log.WithField("provider", string(parser.Provider())).Info("Intent parsing enabled")
	} else {
		log.Info("Intent parsing disabled, using keyword heuristic")
	}

	ag := agent.New(directory, backend, mapsClient, ranker, intentParser, m, log, cfg.MaxContacts)

	// HTTP server
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if sentry.IsEnabled() {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(log))

	setupRoutes(router, cfg, ag, directory, mapsClient, registry, m, log)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM
	shutdownCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("port", cfg.Port).Info("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	<-shutdownCtx.Done()
	log.Info("Shutting down")

	timeoutCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(timeoutCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
	log.Info("Server stopped")
}
