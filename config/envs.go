package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds the runtime settings of the server and the client.
// The board itself is not configurable.
type Config struct {
	Port     string    // HTTP port of the session server
	LogLevel log.Level // logrus level
	Remote   string    // websocket url of a session; empty runs the core locally
	Scale    float64   // client window scale
}

// Load reads an optional .env file and then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debugf(".env file not found or could not be loaded: %v", err)
	}
	return Config{
		Port:     getEnvWithDefault("PORT", "8080"),
		LogLevel: getLevelWithDefault("LOG_LEVEL", log.InfoLevel),
		Remote:   getEnvWithDefault("REMOTE", ""),
		Scale:    getFloatWithDefault("SCALE", 1),
	}
}

// Apply sets the global logrus level.
func (c Config) Apply() {
	log.SetLevel(c.LogLevel)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getLevelWithDefault(key string, defaultValue log.Level) log.Level {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	level, err := log.ParseLevel(value)
	if err != nil {
		log.Warnf("environment variable %s=%q is not a log level, using %s", key, value, defaultValue)
		return defaultValue
	}
	return level
}

func getFloatWithDefault(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		log.Warnf("environment variable %s=%q is not a positive number, using %v", key, value, defaultValue)
		return defaultValue
	}
	return f
}
