// Package config loads converter settings from defaults, an optional YAML
// file, and GRCDUMP_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full converter configuration.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InputConfig locates the SQL dump to convert.
type InputConfig struct {
	Path string `mapstructure:"path"`
}

// OutputConfig controls where and which artifacts are written.
type OutputConfig struct {
	Dir         string `mapstructure:"dir"`
	BalancesDir string `mapstructure:"balances_dir"`
	Parquet     bool   `mapstructure:"parquet"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load builds the configuration. Precedence, lowest to highest: built-in
// defaults, the YAML file at path (when non-empty), environment variables
// like GRCDUMP_INPUT_PATH. A .env file in the working directory is loaded
// into the environment first when present.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	v := viper.New()

	v.SetDefault("input.path", "data/grc-web.sql")
	v.SetDefault("output.dir", "data")
	v.SetDefault("output.balances_dir", "balances")
	v.SetDefault("output.parquet", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("GRCDUMP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input.path must not be empty")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	if c.Output.BalancesDir == "" {
		return fmt.Errorf("output.balances_dir must not be empty")
	}
	return nil
}
