package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"PORT"`
	// ListenAddr overrides Port when set, e.g. "127.0.0.1:9000".
	ListenAddr string `mapstructure:"ADDR"`
	Env        string `mapstructure:"ENV"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`

	// Seed sources, first match wins: database, file, embedded default.
	SeedFile       string `mapstructure:"SEED_FILE"`
	SeedDBDriver   string `mapstructure:"SEED_DB_DRIVER"`
	SeedDBDSN      string `mapstructure:"SEED_DB_DSN"`
	SeedDBHost     string `mapstructure:"SEED_DB_HOST"`
	SeedDBPort     string `mapstructure:"SEED_DB_PORT"`
	SeedDBName     string `mapstructure:"SEED_DB_NAME"`
	SeedDBUser     string `mapstructure:"SEED_DB_USER"`
	SeedDBPassword string `mapstructure:"SEED_DB_PASSWORD"`

	RateLimitPerMin int           `mapstructure:"RATE_LIMIT_PER_MIN"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var keys = []string{
	"PORT", "ADDR", "ENV", "LOG_LEVEL",
	"SEED_FILE", "SEED_DB_DRIVER", "SEED_DB_DSN", "SEED_DB_HOST", "SEED_DB_PORT",
	"SEED_DB_NAME", "SEED_DB_USER", "SEED_DB_PASSWORD",
	"RATE_LIMIT_PER_MIN", "SHUTDOWN_TIMEOUT",
}

// Load reads configuration from the environment and an optional config.yaml
// in the working directory or ./config.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_DB_HOST", "db")
	v.SetDefault("SEED_DB_PORT", "3306")
	v.SetDefault("SEED_DB_NAME", "hotel")
	v.SetDefault("SEED_DB_USER", "appuser")
	v.SetDefault("RATE_LIMIT_PER_MIN", 0)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	// Unmarshal only sees keys viper knows about; bind the rest so
	// AutomaticEnv picks them up.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c.SeedDBDriver = strings.ToLower(strings.TrimSpace(c.SeedDBDriver))
	return c, nil
}

// Addr is the address the HTTP server listens on.
func (c Config) Addr() string {
	if c.ListenAddr != "" {
		return c.ListenAddr
	}
	return ":" + c.Port
}

func (c Config) IsProduction() bool { return c.Env == "production" }

// SeedDSN returns the seed database DSN. An explicit SEED_DB_DSN wins;
// for mysql one is assembled from the SEED_DB_* parts.
func (c Config) SeedDSN() string {
	if c.SeedDBDSN != "" || c.SeedDBDriver != "mysql" {
		return c.SeedDBDSN
	}
	cfg := mysql.NewConfig()
	cfg.User = c.SeedDBUser
	cfg.Passwd = c.SeedDBPassword
	cfg.Net = "tcp"
	cfg.Addr = c.SeedDBHost + ":" + c.SeedDBPort
	cfg.DBName = c.SeedDBName
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}
