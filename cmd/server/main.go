package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/ballflight/internal/api"
	"github.com/playmatatu/ballflight/internal/cache"
	"github.com/playmatatu/ballflight/internal/config"
	"github.com/playmatatu/ballflight/internal/flight"
	"github.com/playmatatu/ballflight/internal/redis"
	"github.com/playmatatu/ballflight/internal/sim"
)

func main() {
	// Initialize configuration (loads .env when present)
	cfg := config.Load()

	constants := cfg.Constants()
	engine := flight.NewEngine(constants)
	log.Printf("[CONFIG] gravity=%.3f air_density=%.3f drag=%.3f mound=%.2f",
		constants.Gravity, constants.AirDensity, constants.DragCoefficient, constants.MoundDistance)

	// Redis is optional; without it every request is computed.
	var store *cache.Store
	if cfg.RedisURL != "" {
		rdb, err := redis.Connect(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Printf("[CACHE] Redis unavailable, caching disabled: %v", err)
		} else {
			defer rdb.Close()
			store = cache.New(rdb, time.Duration(cfg.CacheTTLMinutes)*time.Minute, constants)
			log.Printf("[CACHE] result cache enabled (ttl=%dm)", cfg.CacheTTLMinutes)
		}
	} else {
		log.Printf("[CACHE] REDIS_URL not set, caching disabled")
	}

	svc := sim.NewService(engine, store)

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	api.SetupRoutes(router, svc, cfg, store.Enabled())

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting ballflight server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
