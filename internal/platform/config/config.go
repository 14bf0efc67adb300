package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration. Everything comes from the
// environment so main stays lean and containers need no config files.
type Server struct {
	Addr            string
	StorageDir      string
	RedisURL        string
	ScoreCacheTTL   time.Duration
	ShutdownTimeout time.Duration
	AuditBuffer     int
}

// FromEnv builds a Server config from environment variables, defaulting to
// values suitable for a local demo run.
func FromEnv() Server {
	cfg := Server{
		Addr:            envOr("NBFC_ADDR", ":8080"),
		StorageDir:      envOr("NBFC_STORAGE_DIR", "./storage"),
		RedisURL:        os.Getenv("NBFC_REDIS_URL"),
		ScoreCacheTTL:   5 * time.Minute,
		ShutdownTimeout: 10 * time.Second,
		AuditBuffer:     256,
	}
	if raw := os.Getenv("NBFC_SCORE_CACHE_TTL"); raw != "" {
		if ttl, err := time.ParseDuration(raw); err == nil {
			cfg.ScoreCacheTTL = ttl
		}
	}
	if raw := os.Getenv("NBFC_AUDIT_BUFFER"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.AuditBuffer = n
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
