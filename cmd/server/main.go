package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"hosteldesk/internal/api"
	"hosteldesk/internal/config"
	"hosteldesk/internal/middleware"
	"hosteldesk/internal/repository"
	"hosteldesk/internal/service"

	_ "hosteldesk/docs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// @title Hosteldesk API
// @version 1.0
// @description Record-management backend for hostel complaints and suggestions.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	userRepo := repository.NewUserRepository(client, cfg.DatabaseName, "users")
	activityRepo := repository.NewActivityRepository(client, cfg.DatabaseName, "activity")

	accountService := service.NewAccountService(userRepo, cfg)
	recordService := service.NewRecordService(userRepo)
	adminService := service.NewAdminService(userRepo)
	activityService := service.NewActivityService(activityRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())

	api.SetupRoutes(r, cfg, accountService, recordService, adminService, activityService)

	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	log.Printf("Starting server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
