package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Retry controls how storage flushes are retried before the failure is
// surfaced to the caller.
type Retry struct {
	Attempts     int
	Base         time.Duration
	Max          time.Duration
	JitterFactor float64
}

type Config struct {
	// StoragePath is the JSON file holding all orders.
	StoragePath string
	LogLevel    string

	Retry Retry
}

// Load keeps a simple API and fatals on error for use in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load()

	dir := strings.TrimSpace(os.Getenv("ORDERCLI_DIR"))
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		dir = filepath.Join(home, ".ordercli")
	}

	cfg := Config{
		StoragePath: envDefault("ORDERCLI_STORAGE_PATH", filepath.Join(dir, "orders.json")),
		LogLevel:    envDefault("ORDERCLI_LOG_LEVEL", "warn"),

		Retry: Retry{
			Attempts:     envInt("ORDERCLI_RETRY_ATTEMPTS", 3),
			Base:         envDurationMS("ORDERCLI_RETRY_BASE", 50*time.Millisecond),
			Max:          envDurationMS("ORDERCLI_RETRY_MAX", 500*time.Millisecond),
			JitterFactor: envFloat64("ORDERCLI_RETRY_JITTERFACTOR", 0.3),
		},
	}

	if cfg.Retry.Attempts < 0 {
		log.Printf("ORDERCLI_RETRY_ATTEMPTS is %d, adjusting to 0", cfg.Retry.Attempts)
		cfg.Retry.Attempts = 0
	}
	if cfg.Retry.Max < cfg.Retry.Base {
		log.Printf("ORDERCLI_RETRY_MAX (%v) < ORDERCLI_RETRY_BASE (%v), adjusting max to base", cfg.Retry.Max, cfg.Retry.Base)
		cfg.Retry.Max = cfg.Retry.Base
	}
	return cfg, nil
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envFloat64(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.3f: %v", k, v, def, err)
		return def
	}
	return f
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
