package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"port" validate:"required,numeric"`
	GinMode       string `mapstructure:"gin_mode" validate:"oneof=debug release test"`
	LogLevel      string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	DBDriver      string `mapstructure:"db_driver" validate:"oneof=postgres mysql sqlite"`
	DBHost        string `mapstructure:"db_host"`
	DBPort        string `mapstructure:"db_port"`
	DBUser        string `mapstructure:"db_user"`
	DBPassword    string `mapstructure:"db_password"`
	DBName        string `mapstructure:"db_name" validate:"required"`
	DBMaxOpen     int    `mapstructure:"db_max_open_conns" validate:"gte=0"`
	DBMaxIdle     int    `mapstructure:"db_max_idle_conns" validate:"gte=0"`
	RedisHost     string `mapstructure:"redis_host"`
	RedisPort     string `mapstructure:"redis_port"`
	SessionSecret string `mapstructure:"session_secret" validate:"required,min=16"`
	SessionMaxAge int    `mapstructure:"session_max_age" validate:"gt=0"`
	TimeZone      string `mapstructure:"time_zone" validate:"required"`
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
}

var defaults = map[string]any{
	"port":              "8080",
	"gin_mode":          "debug",
	"log_level":         "info",
	"db_driver":         "postgres",
	"db_host":           "localhost",
	"db_port":           "",
	"db_user":           "taskuser",
	"db_password":       "taskpassword",
	"db_name":           "task_management",
	"db_max_open_conns": 10,
	"db_max_idle_conns": 5,
	"redis_host":        "",
	"redis_port":        "6379",
	"session_secret":    "default-secret-key-change-me",
	"session_max_age":   86400 * 7,
	"time_zone":         "UTC",
	"admin_username":    "admin",
	"admin_password":    "",
}

// Load reads configuration from the environment and, when CONFIG_FILE is set,
// from that file. Environment variables win over file values.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// viper upper-cases keys for env lookup, so db_host reads DB_HOST.

	if err := v.BindEnv("config_file", "CONFIG_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind CONFIG_FILE: %w", err)
	}
	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.DBPort == "" {
		cfg.DBPort = defaultDBPort(cfg.DBDriver)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct constraints and that the time zone is loadable.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("invalid configuration: unknown time zone %q: %w", c.TimeZone, err)
	}
	return nil
}

// Location returns the configured time zone used for deadline checks.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func defaultDBPort(driver string) string {
	switch driver {
	case "mysql":
		return "3306"
	case "postgres":
		return "5432"
	default:
		return ""
	}
}
