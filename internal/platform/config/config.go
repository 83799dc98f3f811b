package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures the runtime configuration for the appointments API.
type Server struct {
	Addr string

	// PostgresDSN is the appointment store connection string. When empty the
	// service runs against the in-memory store (dev and test only).
	PostgresDSN string

	// RedisURL enables the read-through record cache when set.
	RedisURL string
	CacheTTL time.Duration

	// KafkaBrokers seed the merge event producer. When empty, merge events are
	// logged and dropped (dev and test only).
	KafkaBrokers   []string
	MergeTopic     string
	PublishTimeout time.Duration

	DefaultItemsPerPage int
	MaxItemsPerPage     int
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:                envString("APPOINTMENTS_ADDR", ":8080"),
		PostgresDSN:         os.Getenv("POSTGRES_DSN"),
		RedisURL:            os.Getenv("REDIS_URL"),
		CacheTTL:            envDuration("RECORD_CACHE_TTL", 5*time.Minute),
		KafkaBrokers:        envList("KAFKA_BROKERS"),
		MergeTopic:          envString("OFFICER_MERGE_TOPIC", "officer-merge"),
		PublishTimeout:      envDuration("MERGE_PUBLISH_TIMEOUT", 10*time.Second),
		DefaultItemsPerPage: envInt("DEFAULT_ITEMS_PER_PAGE", 35),
		MaxItemsPerPage:     envInt("MAX_ITEMS_PER_PAGE", 100),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
