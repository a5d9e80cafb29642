package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// GenerateDelayMs is the fixed portion of the simulated generation
	// delay, in milliseconds.
	GenerateDelayMs int `json:"generate_delay_ms"`

	// GenerateJitterMs is the upper bound of the random portion added
	// on top of GenerateDelayMs.
	GenerateJitterMs int `json:"generate_jitter_ms"`

	// DefaultPlatforms is the platform preselection used when a
	// generate request names none.
	DefaultPlatforms []string `json:"default_platforms,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database
	// connections. If set to 1, all database access is serialized.
	// 0 means use sql.DB default.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database
	// connections. 0 means use sql.DB default.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from
	// registration. Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		GenerateDelayMs:  1500,
		GenerateJitterMs: 2000,
		DefaultPlatforms: []string{"instagram"},
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir().
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and
// deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.GenerateDelayMs = overlay.GenerateDelayMs
	if result.GenerateDelayMs == 0 {
		result.GenerateDelayMs = base.GenerateDelayMs
	}

	result.GenerateJitterMs = overlay.GenerateJitterMs
	if result.GenerateJitterMs == 0 {
		result.GenerateJitterMs = base.GenerateJitterMs
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	// DefaultPlatforms replaces wholesale when set; merging would
	// defeat narrowing the preselection.
	result.DefaultPlatforms = overlay.DefaultPlatforms
	if len(result.DefaultPlatforms) == 0 {
		result.DefaultPlatforms = base.DefaultPlatforms
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes
// duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
