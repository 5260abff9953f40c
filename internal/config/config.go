package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ToolDirName is the project-local directory all artifacts live under.
const ToolDirName = ".deadscan"

// Config holds all configuration settings. Fields carry both yaml tags (file
// writing) and mapstructure tags (viper decoding) so the keys Save emits are
// the keys Load maps back.
type Config struct {
	// Scan configuration
	Scan ScanConfig `yaml:"scan" mapstructure:"scan"`

	// Monitor thresholds and schedules
	Monitor MonitorConfig `yaml:"monitor" mapstructure:"monitor"`

	// Planner settings
	Planner PlannerConfig `yaml:"planner" mapstructure:"planner"`
}

type ScanConfig struct {
	IgnoreDirs       []string `yaml:"ignore_dirs" mapstructure:"ignore_dirs"`
	SourceExtensions []string `yaml:"source_extensions" mapstructure:"source_extensions"`
}

type MonitorConfig struct {
	MaxUnusedFunctions  int           `yaml:"max_unused_functions" mapstructure:"max_unused_functions"`
	MaxDeadCodeBlocks   int           `yaml:"max_dead_code_blocks" mapstructure:"max_dead_code_blocks"`
	CleanupInterval     time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
	RetentionWindow     time.Duration `yaml:"retention_window" mapstructure:"retention_window"`
	AlertOnNewFunctions bool          `yaml:"alert_on_new_functions" mapstructure:"alert_on_new_functions"`
}

type PlannerConfig struct {
	// Minutes of review effort estimated per finding in each tier.
	LowMinutesPerItem    int `yaml:"low_minutes_per_item" mapstructure:"low_minutes_per_item"`
	MediumMinutesPerItem int `yaml:"medium_minutes_per_item" mapstructure:"medium_minutes_per_item"`
	HighMinutesPerItem   int `yaml:"high_minutes_per_item" mapstructure:"high_minutes_per_item"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			IgnoreDirs: []string{
				"node_modules", ".git", "dist", "build", "coverage",
				".nyc_output", ".claude", ".vscode", "__pycache__",
				".pytest_cache", "venv", "env", ToolDirName,
			},
			SourceExtensions: []string{".ts", ".tsx", ".js", ".jsx", ".mjs"},
		},
		Monitor: MonitorConfig{
			MaxUnusedFunctions:  50,
			MaxDeadCodeBlocks:   200,
			CleanupInterval:     30 * 24 * time.Hour,
			RetentionWindow:     30 * 24 * time.Hour,
			AlertOnNewFunctions: true,
		},
		Planner: PlannerConfig{
			LowMinutesPerItem:    2,
			MediumMinutesPerItem: 5,
			HighMinutesPerItem:   10,
		},
	}
}

// Load loads configuration from file.
func Load(path string) (*Config, error) {
	// Load .env files first (in order of precedence)
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	// Set defaults
	cfg := Default()
	v.SetDefault("scan", cfg.Scan)
	v.SetDefault("monitor", cfg.Monitor)
	v.SetDefault("planner", cfg.Planner)

	// Load from environment variables
	v.SetEnvPrefix("DEADSCAN")
	v.AutomaticEnv()

	// Try to find config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		// Search for config in standard locations
		v.SetConfigName("config")
		v.AddConfigPath(ToolDirName)
		v.AddConfigPath(".")
		homeDir, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(homeDir, ToolDirName))
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	// Unmarshal into struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadEnvFiles loads .env files in order of precedence
func loadEnvFiles() {
	envFiles := []string{
		".env.local", // Local overrides (highest precedence)
		".env",       // Main environment file
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			godotenv.Load(file)
		}
	}

	// Also try loading from home directory
	homeDir, _ := os.UserHomeDir()
	homeEnvFile := filepath.Join(homeDir, ToolDirName, ".env")
	if _, err := os.Stat(homeEnvFile); err == nil {
		godotenv.Load(homeEnvFile)
	}
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if max := os.Getenv("DEADSCAN_MAX_UNUSED_FUNCTIONS"); max != "" {
		if n, err := strconv.Atoi(max); err == nil {
			cfg.Monitor.MaxUnusedFunctions = n
		}
	}
	if max := os.Getenv("DEADSCAN_MAX_DEAD_CODE_BLOCKS"); max != "" {
		if n, err := strconv.Atoi(max); err == nil {
			cfg.Monitor.MaxDeadCodeBlocks = n
		}
	}
	if days := os.Getenv("DEADSCAN_CLEANUP_INTERVAL_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			cfg.Monitor.CleanupInterval = time.Duration(n) * 24 * time.Hour
		}
	}
	if days := os.Getenv("DEADSCAN_RETENTION_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			cfg.Monitor.RetentionWindow = time.Duration(n) * 24 * time.Hour
		}
	}
	if alert := os.Getenv("DEADSCAN_ALERT_ON_NEW_FUNCTIONS"); alert != "" {
		cfg.Monitor.AlertOnNewFunctions = alert == "true"
	}
}

// ToolDir returns the artifact directory for a project root.
func ToolDir(root string) string {
	return filepath.Join(root, ToolDirName)
}

// Save saves configuration to file.
func (c *Config) Save(path string) error {
	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("scan", c.Scan)
	v.Set("monitor", c.Monitor)
	v.Set("planner", c.Planner)

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
