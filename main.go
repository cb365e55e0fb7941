package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"furnish-shop/config"
	_ "furnish-shop/docs"
	"furnish-shop/middleware"
	"furnish-shop/models"
	"furnish-shop/routes"
	"furnish-shop/store"
)

func main() {
	config.LoadConfig()

	var logger *zap.Logger
	var err error
	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		gin.SetMode(gin.DebugMode)
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	s, err := store.New(config.AppConfig.DataDir)
	if err != nil {
		logger.Fatal("Failed to open data directory", zap.Error(err))
	}
	if err := models.SeedDefaults(s); err != nil {
		logger.Fatal("Failed to seed defaults", zap.Error(err))
	}

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		logger.Fatal("Failed to create upload directory", zap.Error(err))
	}

	models.InitRedis()
	defer models.CloseRedis()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, s)

	port := ":" + config.AppConfig.Port
	logger.Info("Server starting",
		zap.String("port", config.AppConfig.Port),
		zap.String("env", config.AppConfig.AppEnv),
	)

	if err := router.Run(port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
