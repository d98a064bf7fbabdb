package main

import (
	"context"
	"fmt"

	"github.com/SuperEjay/pos-sub000/configs"
	"github.com/SuperEjay/pos-sub000/middlewares"
	"github.com/SuperEjay/pos-sub000/routes"
	"github.com/SuperEjay/pos-sub000/storage"
	"github.com/SuperEjay/pos-sub000/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		logger.Fatal("schema migration failed", zap.Error(err))
	}

	if err := configs.SeedAdmin(); err != nil {
		logger.Fatal("seed admin failed", zap.Error(err))
	}
	if err := configs.SeedLookups(); err != nil {
		logger.Fatal("seed lookups failed", zap.Error(err))
	}

	// Object storage
	store, err := storage.New(context.Background(), storage.Config{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		Endpoint:      cfg.S3Endpoint,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PathStyle:     cfg.S3PathStyle,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		logger.Fatal("object storage init failed", zap.Error(err))
	}

	// Realtime order feed
	hub := ws.NewOrderHub(logger)
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, hub, store, logger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
