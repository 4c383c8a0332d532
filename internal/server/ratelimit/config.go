package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate limit rule for one path and method.
type EndpointConfig struct {
	Path   string        // exact path, or a prefix when it ends with "/"
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// key identifies the rule's bucket family.
func (c *EndpointConfig) key() string {
	return c.Method + " " + c.Path
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Credential endpoints
		{Path: "/v1/auth/register", Method: "POST", Limit: 10, Window: time.Hour, Burst: 3},
		{Path: "/v1/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/v1/auth/password", Method: "PUT", Limit: 5, Window: time.Minute, Burst: 2},

		// Profile writes
		{Path: "/v1/profiles/", Method: "PUT", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/v1/profiles/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		// Postings
		{Path: "/v1/jobs", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/v1/jobs/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},

		// Picker round-trips are chatty
		{Path: "/v1/cascade", Method: "POST", Limit: 300, Window: time.Minute, Burst: 50},

		// Reads fall through to the default limit; /health and /metrics are unlimited.
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
