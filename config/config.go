package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Upstream earnings API
const UPSTREAM_ENDPOINT_BASE = "http://localhost:5000"

// HTTP server
const HTTP_SERVER_ADDR = ":8080"

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Snapshot cache expiry
const SNAPSHOT_CACHE_TTL_SECONDS = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const EARNINGS_RESPONSE_RESOURCE = "earnings_response.json"

// Config holds the resolved service configuration: compiled defaults,
// overlaid by an optional YAML file, overlaid by environment variables.
type Config struct {
	UpstreamBaseURL    string
	HTTPAddr           string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	SnapshotTTLSeconds int
}

type fileConfig struct {
	UpstreamBaseURL    string `yaml:"upstream_base_url"`
	HTTPAddr           string `yaml:"http_addr"`
	RedisAddr          string `yaml:"redis_addr"`
	RedisPassword      string `yaml:"redis_password"`
	RedisDB            *int   `yaml:"redis_db"`
	SnapshotTTLSeconds *int   `yaml:"snapshot_ttl_seconds"`
}

// Load resolves the configuration. The YAML file path comes from
// EARNINGS_CONFIG and is optional; a missing file is not an error.
func Load() *Config {
	cfg := &Config{
		UpstreamBaseURL:    UPSTREAM_ENDPOINT_BASE,
		HTTPAddr:           HTTP_SERVER_ADDR,
		RedisAddr:          REDIS_DB_ADDRESS,
		RedisPassword:      REDIS_DB_PASSWORD,
		RedisDB:            REDIS_DB,
		SnapshotTTLSeconds: SNAPSHOT_CACHE_TTL_SECONDS,
	}

	if path := os.Getenv("EARNINGS_CONFIG"); path != "" {
		applyFile(cfg, path)
	}
	applyEnv(cfg)
	return cfg
}

func applyFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[Config] Skipping config file %s: %v", path, err)
		return
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		log.Printf("[Config] Failed to parse config file %s: %v", path, err)
		return
	}
	if fc.UpstreamBaseURL != "" {
		cfg.UpstreamBaseURL = fc.UpstreamBaseURL
	}
	if fc.HTTPAddr != "" {
		cfg.HTTPAddr = fc.HTTPAddr
	}
	if fc.RedisAddr != "" {
		cfg.RedisAddr = fc.RedisAddr
	}
	if fc.RedisPassword != "" {
		cfg.RedisPassword = fc.RedisPassword
	}
	if fc.RedisDB != nil {
		cfg.RedisDB = *fc.RedisDB
	}
	if fc.SnapshotTTLSeconds != nil {
		cfg.SnapshotTTLSeconds = *fc.SnapshotTTLSeconds
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("EARNINGS_UPSTREAM_URL"); v != "" {
		cfg.UpstreamBaseURL = v
	}
	if v := os.Getenv("EARNINGS_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("EARNINGS_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("EARNINGS_REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("EARNINGS_SNAPSHOT_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.SnapshotTTLSeconds = n
		}
	}
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
