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

	"github.com/tabletalk-ai/tabletalk/internal/api"
	"github.com/tabletalk-ai/tabletalk/internal/classifier"
	"github.com/tabletalk-ai/tabletalk/internal/config"
	"github.com/tabletalk-ai/tabletalk/internal/core"
	"github.com/tabletalk-ai/tabletalk/internal/store"
)

func main() {
	// Load configuration
	config.LoadConfig()

	logger := newLogger(config.AppConfig.LogLevel)
	defer logger.Sync()

	// Initialize the in-memory conversation store
	memStore := store.NewMemoryStore()
	if config.AppConfig.SeedSamples {
		n := memStore.SeedSamples(time.Now())
		logger.Info("sample sessions initialized", zap.Int("count", n))
	}

	// Initialize Chat service with the keyword classifier
	chatService := core.NewChatService(memStore, classifier.NewKeywordClassifier(), logger)

	// Initialize API Handler and Router
	apiHandler := api.NewAPIHandler(chatService, logger)
	router := api.NewRouter(apiHandler, logger, config.AppConfig.CORSAllowedOrigins)

	// Start HTTP server
	serverAddr := fmt.Sprintf(":%s", config.AppConfig.HTTPPort)

	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		logger.Info("starting server", zap.String("addr", serverAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not listen", zap.String("addr", serverAddr), zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give active connections time to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited gracefully")
}

func newLogger(level string) *zap.Logger {
	if level == "DEBUG" {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}
