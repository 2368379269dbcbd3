package config

import (
	"log"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/playmatatu/ballflight/internal/flight"
)

type Config struct {
	// Environment
	Environment string

	// Redis; empty disables the result cache
	RedisURL string

	// Server
	Port        string
	FrontendURL string

	// Cache and playback
	CacheTTLMinutes int
	PlaybackFPS     int

	// Physics overrides, nil means use the default
	Gravity                *float64
	AirDensity             *float64
	DragCoefficient        *float64
	BattingLiftCoefficient *float64
	BallMass               *float64
	BallRadius             *float64
	MoundDistance          *float64
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Redis
		RedisURL: getEnv("REDIS_URL", ""),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Cache and playback
		CacheTTLMinutes: getEnvInt("CACHE_TTL_MINUTES", 60),
		PlaybackFPS:     getEnvInt("PLAYBACK_FPS", 60),

		// Physics
		Gravity:                lookupEnvFloat("GRAVITY"),
		AirDensity:             lookupEnvFloat("AIR_DENSITY"),
		DragCoefficient:        lookupEnvFloat("DRAG_COEFFICIENT"),
		BattingLiftCoefficient: lookupEnvFloat("BATTING_LIFT_COEFFICIENT"),
		BallMass:               lookupEnvFloat("BALL_MASS"),
		BallRadius:             lookupEnvFloat("BALL_RADIUS"),
		MoundDistance:          lookupEnvFloat("MOUND_DISTANCE"),
	}
}

// Constants layers the configured overrides onto the default physics.
func (c *Config) Constants() flight.Constants {
	k := flight.DefaultConstants()
	override(&k.Gravity, c.Gravity)
	override(&k.AirDensity, c.AirDensity)
	override(&k.DragCoefficient, c.DragCoefficient)
	override(&k.BattingLiftCoefficient, c.BattingLiftCoefficient)
	override(&k.BallMass, c.BallMass)
	override(&k.BallRadius, c.BallRadius)
	override(&k.MoundDistance, c.MoundDistance)
	return k
}

func override(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// lookupEnvFloat returns nil when key is unset, empty or not a
// non-negative finite number. Zero is a valid override.
func lookupEnvFloat(key string) *float64 {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		log.Printf("[CONFIG] ignoring %s=%q: want a non-negative number", key, value)
		return nil
	}
	return &f
}
