package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Brownie44l1/obesity-api/internal/config"
	"github.com/Brownie44l1/obesity-api/internal/dataset"
	"github.com/Brownie44l1/obesity-api/internal/handlers"
	"github.com/Brownie44l1/obesity-api/internal/logging"
	"github.com/Brownie44l1/obesity-api/internal/metrics"
	"github.com/Brownie44l1/obesity-api/internal/model"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		log.Fatalf("Failed to get working directory: %v", err)
	}
	cfg.Resolve(workDir)

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("loading model", zap.String("model", cfg.ModelPath), zap.String("metadata", cfg.MetadataPath))

	meta, err := model.LoadMetadata(cfg.MetadataPath)
	if err != nil {
		logger.Fatal("failed to load metadata", zap.Error(err))
	}

	modelServer, err := model.NewServer(cfg.ModelPath, meta, cfg.ONNXRuntimeLib)
	if err != nil {
		logger.Fatal("failed to initialize model server", zap.Error(err))
	}
	defer modelServer.Close()

	predictor, err := model.NewPredictor(meta, modelServer, logger)
	if err != nil {
		logger.Fatal("failed to build predictor", zap.Error(err))
	}

	var summaries *dataset.Summarizer
	if data, err := dataset.Load(cfg.DatasetPath); err != nil {
		logger.Warn("dataset unavailable, /dataset/summary disabled", zap.String("path", cfg.DatasetPath), zap.Error(err))
	} else if summaries, err = dataset.NewSummarizer(data, cfg.SummaryCacheSize); err != nil {
		logger.Warn("summary cache unavailable", zap.Error(err))
		summaries = nil
	} else {
		logger.Info("dataset loaded", zap.String("path", cfg.DatasetPath), zap.Int("rows", data.Len()))
	}

	gin.SetMode(handlers.Mode(cfg.LogLevel))

	m := metrics.New()
	handler := handlers.NewHandler(predictor, summaries, m, logger)
	router := handlers.NewRouter(logger, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.Int("features", predictor.Schema().Len()),
		zap.Strings("classes", model.Labels[:]),
	)
	logger.Info("endpoints",
		zap.Strings("routes", []string{
			"GET /health",
			"POST /predict",
			"GET /schema",
			"GET /dataset/summary",
			"GET /metrics",
		}),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("server failed", zap.Error(err))
		return
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
