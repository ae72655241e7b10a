// cmd/tool-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hr-voice-tools/internal/application"
	"hr-voice-tools/internal/common/aws"
	"hr-voice-tools/internal/common/config"
	"hr-voice-tools/internal/common/database"
	"hr-voice-tools/internal/common/logger"
	"hr-voice-tools/internal/common/observability"
	"hr-voice-tools/internal/dispatch"
	"hr-voice-tools/internal/knowledge"
	"hr-voice-tools/internal/notify"
	"hr-voice-tools/internal/onboarding"
	"hr-voice-tools/internal/server"
	"hr-voice-tools/internal/store"
	"hr-voice-tools/internal/tools/applicationtools"
	"hr-voice-tools/internal/tools/handovertools"
	"hr-voice-tools/internal/tools/knowledgetools"
	"hr-voice-tools/internal/tools/onboardingtools"
	"hr-voice-tools/pkg/registry"

	esclient "github.com/elastic/go-elasticsearch/v8"
	redisclient "github.com/redis/go-redis/v9"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting tool server...",
		zap.String("address", cfg.Server.Address),
	)

	obs := observability.New("tool-server")
	defer obs.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Record stores ---
	appStore, err := store.New(cfg.Data.ApplicationsDir)
	if err != nil {
		zapLog.Fatal("applications store init failed", zap.Error(err))
	}
	offerStore, err := store.New(cfg.Data.OffersDir)
	if err != nil {
		zapLog.Fatal("offers store init failed", zap.Error(err))
	}

	// --- Elasticsearch (optional, knowledge base degrades without it) ---
	var es *esclient.Client
	err = retryWithBackoff(func() error {
		client, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		if err := client.Ping(); err != nil {
			return err
		}
		es = client.Client
		return nil
	}, 3, 2*time.Second, zapLog, "Elasticsearch connection")
	if err != nil {
		zapLog.Warn("elasticsearch unavailable, knowledge base answers degrade", zap.Error(err))
	} else {
		zapLog.Info("Elasticsearch connected successfully")
	}

	// --- Redis (optional, knowledge cache is skipped without it) ---
	var cache *redisclient.Client
	err = retryWithBackoff(func() error {
		client, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		if err := client.Ping(ctx); err != nil {
			return err
		}
		cache = client.Client
		return nil
	}, 3, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Warn("redis unavailable, knowledge cache disabled", zap.Error(err))
	} else {
		zapLog.Info("Redis connected successfully")
		defer cache.Close()
	}

	// --- Mailer ---
	var mailer notify.Mailer = notify.NewLogMailer(log)
	if cfg.Notifications.Email.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		mailer = notify.NewSESMailer(sesClient, cfg.Notifications.Email.FromEmail, log)
		zapLog.Info("SES mailer enabled", zap.String("from", cfg.Notifications.Email.FromEmail))
	}

	// --- Services ---
	appService := application.NewService(appStore, cfg.Application, log)
	onboardingService := onboarding.NewService(offerStore, mailer, log)
	retriever := knowledge.NewRetriever(
		es,
		cache,
		cfg.Knowledge.Index,
		cfg.Knowledge.DefaultTopK,
		config.GetDuration(cfg.Knowledge.CacheTTL),
		log,
	)

	// --- Tool registry and dispatch ---
	reg, err := registry.LoadRegistry(cfg.Registry.Path)
	if err != nil {
		zapLog.Fatal("tool registry load failed", zap.Error(err), zap.String("path", cfg.Registry.Path))
	}
	dispatcher := dispatch.NewDispatcher(reg, log, obs)

	if err := applicationtools.Register(dispatcher, appService); err != nil {
		zapLog.Fatal("application tools registration failed", zap.Error(err))
	}
	if err := onboardingtools.Register(dispatcher, onboardingService); err != nil {
		zapLog.Fatal("onboarding tools registration failed", zap.Error(err))
	}
	if err := knowledgetools.Register(dispatcher, retriever); err != nil {
		zapLog.Fatal("knowledge tools registration failed", zap.Error(err))
	}
	if err := handovertools.Register(dispatcher); err != nil {
		zapLog.Fatal("handover tools registration failed", zap.Error(err))
	}
	if missing := dispatcher.Unbound(); len(missing) > 0 {
		zapLog.Fatal("registry declares tools with no handler", zap.Strings("tools", missing))
	}
	zapLog.Info("All tools registered", zap.Int("count", len(reg.Tools)))

	// --- Demo status simulation ---
	if cfg.Application.Simulation.Enabled {
		updater := application.NewUpdater(
			appStore,
			config.GetDuration(cfg.Application.Simulation.Interval),
			log,
		)
		go updater.Run(ctx)
	}

	// --- HTTP server ---
	srv := server.New(cfg.Server, dispatcher, log).HTTPServer()
	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	zapLog.Info("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("http shutdown failed", zap.Error(err))
	}
	zapLog.Info("Shutdown complete")
}
