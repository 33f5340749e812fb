package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled bool
	// Default applies to requests no rule matches.
	DefaultLimit  int
	DefaultWindow time.Duration
	Rules         []Rule
	// Exempt paths are never limited.
	Exempt []string
	// Trusted clients are never limited; Blocked clients are always refused.
	Trusted map[string]bool
	Blocked map[string]bool
	// Buckets idle for IdleTTL are dropped every CleanupInterval.
	CleanupInterval time.Duration
	IdleTTL         time.Duration
}

// DefaultConfig returns the built-in limits.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		Rules:           DefaultRules(),
		Exempt:          []string{"/health"},
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
	}
}

// LoadConfig reads RATE_LIMIT_* environment variables over DefaultConfig.
// Each rule can be tuned with RATE_LIMIT_<NAME>_LIMIT, _WINDOW and _BURST,
// e.g. RATE_LIMIT_GENERATION_LIMIT=20.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = envBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return cfg
	}

	cfg.DefaultLimit = envInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = envDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = envDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.Trusted = parseIPList(os.Getenv("RATE_LIMIT_TRUSTED"))
	cfg.Blocked = parseIPList(os.Getenv("RATE_LIMIT_BLOCKED"))

	for i := range cfg.Rules {
		r := &cfg.Rules[i]
		prefix := "RATE_LIMIT_" + strings.ToUpper(r.Name) + "_"
		r.Limit = envInt(prefix+"LIMIT", r.Limit)
		r.Window = envDuration(prefix+"WINDOW", r.Window)
		r.Burst = envInt(prefix+"BURST", r.Burst)
	}
	return cfg
}

func envInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}

func envBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return def
}

// parseIPList turns "a, b,c" into a set.
func parseIPList(list string) map[string]bool {
	set := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			set[ip] = true
		}
	}
	return set
}
