package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/playmatatu/ballflight/internal/config"
)

// CORSMiddleware returns a CORS middleware configured for the environment
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	log.Printf("[CORS] Environment: %s, FrontendURL: %s", cfg.Environment, cfg.FrontendURL)

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Accept", "Cache-Control", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	corsConfig.AllowOrigins = AllowedOrigins(cfg)
	if len(corsConfig.AllowOrigins) == 0 {
		log.Printf("[CORS] FRONTEND_URL not set, allowing all origins")
		corsConfig.AllowAllOrigins = true
	} else if cfg.Environment != "development" {
		log.Printf("[CORS] Production allowed origins: %v", corsConfig.AllowOrigins)
	}

	return cors.New(corsConfig)
}

// AllowedOrigins lists the browser origins permitted to call the API.
func AllowedOrigins(cfg *config.Config) []string {
	if cfg.Environment == "development" {
		return []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}
	if cfg.FrontendURL == "" {
		return nil
	}
	return []string{cfg.FrontendURL}
}

// WebSocketOriginCheck validates websocket upgrade origins. Development
// accepts any localhost port.
func WebSocketOriginCheck(cfg *config.Config) func(*http.Request) bool {
	allowed := AllowedOrigins(cfg)
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			// Non-browser clients do not send an Origin.
			return true
		}
		if cfg.Environment == "development" {
			return strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:")
		}
		for _, o := range allowed {
			if origin == o {
				return true
			}
		}
		return false
	}
}
