// Package config loads service configuration from a YAML file with
// APP_* environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// Config holds all service configuration.
type Config struct {
	App struct {
		Env      string `mapstructure:"env"`
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"app"`

	HTTP struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"http"`

	Postgres struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"postgres"`

	Admin struct {
		// Key guards /admin/clear-data. Treated as a capability token;
		// must come from the environment or the config file, never
		// from source.
		Key string `mapstructure:"key"`
	} `mapstructure:"admin"`

	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"metrics"`
}

// Load reads configuration from path, applying APP_* env overrides
// (e.g. APP_POSTGRES_DSN, APP_ADMIN_KEY).
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("metrics.enabled", true)

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unmarshal config: %w", err)
	}

	if c.Postgres.DSN == "" {
		return c, fmt.Errorf("postgres.dsn is required")
	}
	if c.Admin.Key == "" {
		return c, fmt.Errorf("admin.key is required")
	}

	return c, nil
}
