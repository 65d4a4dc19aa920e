package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-user-directory/config"
	_ "go-user-directory/docs" // Important for Swagger
	v1 "go-user-directory/internal/delivery/http/v1"
	"go-user-directory/internal/repository/cellstore"
	"go-user-directory/internal/storage"
	"go-user-directory/internal/usecase"
	"go-user-directory/pkg/database"
	"go-user-directory/pkg/logger"
	"go-user-directory/pkg/redisclient"
	"go-user-directory/pkg/validation"

	"github.com/bwmarrin/snowflake"
	"github.com/go-playground/validator/v10"
)

// @title           User Directory API
// @version         1.0
// @description     Backend for the user directory application: CRUD over the
// @description     user collection plus per-section profile edit sessions.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting user directory backend", "port", cfg.Port, "storage", cfg.StorageBackend)

	// 3. Setup Storage
	cell := storage.NewCell(newBackend(cfg))

	// 4. Setup Repository (loads the collection, seeds when empty)
	userRepo := cellstore.NewUserRepository(context.Background(), cell, cfg.StorageKey)

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	node, err := snowflake.NewNode(cfg.SnowflakeNode)
	if err != nil {
		logger.Log.Error("Failed to create snowflake node", "error", err)
		os.Exit(1)
	}

	directoryUC := usecase.NewDirectoryUsecase(userRepo, validate, node)
	editorUC := usecase.NewEditorUsecase(directoryUC, node)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		DirectoryUC: directoryUC,
		EditorUC:    editorUC,
		Config:      cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exited")
}

// newBackend picks the storage backend from config. Any backend that cannot
// be constructed degrades to process memory with a warning: the directory
// still works for the session, changes just do not survive a restart.
func newBackend(cfg *config.Config) storage.Backend {
	switch cfg.StorageBackend {
	case "postgres":
		pool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Warn("Postgres unavailable, storage degraded to memory", "error", err)
			return storage.NewMemoryBackend()
		}
		backend, err := storage.NewPostgresBackend(context.Background(), pool)
		if err != nil {
			logger.Log.Warn("Postgres slot table unavailable, storage degraded to memory", "error", err)
			return storage.NewMemoryBackend()
		}
		return backend
	case "redis":
		client, err := redisclient.New(redisclient.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, storage degraded to memory", "error", err)
			return storage.NewMemoryBackend()
		}
		return storage.NewRedisBackend(client)
	case "memory":
		return storage.NewMemoryBackend()
	default:
		backend, err := storage.NewFileBackend(cfg.StorageDir)
		if err != nil {
			logger.Log.Warn("Storage dir unavailable, storage degraded to memory", "error", err)
			return storage.NewMemoryBackend()
		}
		return backend
	}
}
