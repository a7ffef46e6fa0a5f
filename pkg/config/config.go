// Package config loads the process-wide configuration exactly once at startup.
// No other package reads the environment; components receive the parts of the
// Config they need through the container.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the root configuration object, built once in Load.
type Config struct {
	LogLevel string

	Server     ServerConfig
	Storage    StorageConfig
	OCR        OCRConfig
	Generation GenerationConfig
	Notify     NotifyConfig
	Pipeline   PipelineConfig
}

// ServerConfig configures the inbound HTTP server.
type ServerConfig struct {
	Port        string
	CORSOrigins string
	BodyLimit   int
}

// Load reads the environment and builds the full configuration.
func Load() *Config {
	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Port:        getEnv("PORT", "8081"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
			BodyLimit:   getEnvInt("BODY_LIMIT_BYTES", 10*1024*1024),
		},
		Storage:    loadStorageConfig(),
		OCR:        loadOCRConfig(),
		Generation: loadGenerationConfig(),
		Notify:     loadNotifyConfig(),
		Pipeline:   loadPipelineConfig(),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes":
			return true
		case "0", "false", "no":
			return false
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvStringSlice(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
