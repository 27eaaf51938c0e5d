package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	adaptercache "github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/adapter/cache"
	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/adapter/client"
	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/adapter/http/router"
	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/domain/service"
	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/infrastructure/cache"
	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/infrastructure/config"
	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/infrastructure/logger"
	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/usecase"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "api",
		Short:         "Turkish sentiment analysis API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "predict <text>",
		Short: "Classify a single text and print the JSON result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return predict(cmd.Context(), strings.Join(args, " "))
		},
	})

	return rootCmd
}

// app holds the components shared by the serve and predict commands
type app struct {
	cfg         *config.Config
	log         *zap.Logger
	redisClient *redis.Client
	predictUC   usecase.PredictionUsecase
}

// appOption adjusts the loaded configuration for a single command
type appOption func(*config.Config)

// withLogOutput overrides the console log destination
func withLogOutput(output string) appOption {
	return func(cfg *config.Config) {
		cfg.Log.Output = output
	}
}

func newApp(ctx context.Context, opts ...appOption) (*app, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{cfg: cfg, log: log}

	// Load model (optional, continue without it)
	var classifier service.Classifier
	if c, err := client.LoadClassifier(ctx, &cfg.Model); err != nil {
		log.Error("Failed to load model, predictions will be rejected",
			zap.String("model", cfg.Model.Name), zap.Error(err))
	} else {
		classifier = c
		log.Info("Model loaded", zap.String("model", cfg.Model.Name), zap.String("url", cfg.Model.URL()))
	}

	// Initialize prediction cache (optional)
	var predictionCache service.PredictionCache
	if cfg.Cache.Enabled {
		switch cfg.Cache.Backend {
		case "redis":
			redisClient, err := cache.NewRedisClient(&cfg.Redis)
			if err != nil {
				log.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
			} else {
				a.redisClient = redisClient
				predictionCache = adaptercache.NewRedisCache(redisClient, cfg.Redis.KeyPrefix, cfg.Model.Name, cfg.Cache.TTL, log)
				log.Info("Connected to Redis", zap.String("address", cfg.Redis.Addr()))
			}
		default:
			predictionCache = adaptercache.NewMemoryCache(cfg.Cache.Size, cfg.Cache.TTL)
			log.Info("Using in-memory prediction cache", zap.Int("size", cfg.Cache.Size))
		}
	}

	a.predictUC = usecase.NewPredictionUsecase(classifier, predictionCache)
	return a, nil
}

func (a *app) close() {
	if a.redisClient != nil {
		_ = a.redisClient.Close()
	}
	_ = a.log.Sync()
}

func serve() error {
	a, err := newApp(context.Background())
	if err != nil {
		return err
	}
	defer a.close()

	log := a.log

	// Set Gin mode
	gin.SetMode(a.cfg.Server.Mode)

	// Setup router
	r := router.Setup(a.predictUC, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: a.cfg.Model.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error("Server failed", zap.Error(err))
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
	return nil
}

func predict(ctx context.Context, text string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// stdout carries only the JSON result
	a, err := newApp(ctx, withLogOutput(config.LogOutputStderr))
	if err != nil {
		return err
	}
	defer a.close()

	output, err := a.predictUC.Predict(ctx, &usecase.PredictInput{Text: &text})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
