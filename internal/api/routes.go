package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/ballflight/internal/api/handlers"
	"github.com/playmatatu/ballflight/internal/config"
	"github.com/playmatatu/ballflight/internal/middleware"
	"github.com/playmatatu/ballflight/internal/sim"
	"github.com/playmatatu/ballflight/internal/ws"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, svc *sim.Service, cfg *config.Config, cacheEnabled bool) {
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Next()
		})
		log.Println("[DEV MODE] no-cache headers enabled for all routes")
	}

	player := ws.NewPlayer(svc, cfg.PlaybackFPS, middleware.WebSocketOriginCheck(cfg))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck(cacheEnabled))
		v1.GET("/constants", handlers.GetConstants(svc))

		batting := v1.Group("/batting")
		{
			batting.POST("/simulate", handlers.SimulateBatting(svc))
		}

		pitching := v1.Group("/pitching")
		{
			pitching.POST("/simulate", handlers.SimulatePitching(svc))
			pitching.POST("/solve", handlers.SolvePitch(svc))
			pitching.POST("/edit", handlers.EditPitch(svc))
		}

		v1.GET("/playback/ws", handlers.HandlePlayback(player))
	}
}
