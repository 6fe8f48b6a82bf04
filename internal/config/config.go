package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Mode     string `mapstructure:"mode"`
	Port     int    `mapstructure:"port"`
	Secret   string `mapstructure:"secret"`
	LogLevel string `mapstructure:"log_level"`

	StoreDriver    string        `mapstructure:"store_driver"`
	BadgerPath     string        `mapstructure:"badger_path"`
	BadgerInMemory bool          `mapstructure:"badger_in_memory"`
	StoreTimeout   time.Duration `mapstructure:"store_timeout"`

	RetryMaxAttempts     uint          `mapstructure:"retry_max_attempts"`
	RetryInitialInterval time.Duration `mapstructure:"retry_initial_interval"`
	RetryMaxInterval     time.Duration `mapstructure:"retry_max_interval"`

	WatchPollInterval time.Duration `mapstructure:"watch_poll_interval"`
	PingPeriod        time.Duration `mapstructure:"ping_period"`
	ReadLimit         int64         `mapstructure:"read_limit"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "release")
	v.SetDefault("port", 8080)
	v.SetDefault("secret", "hallway-dev-secret")
	v.SetDefault("log_level", "info")
	v.SetDefault("store_driver", "badger")
	v.SetDefault("badger_path", "./data/rooms")
	v.SetDefault("badger_in_memory", false)
	v.SetDefault("store_timeout", "3s")
	v.SetDefault("retry_max_attempts", 5)
	v.SetDefault("retry_initial_interval", "10ms")
	v.SetDefault("retry_max_interval", "200ms")
	v.SetDefault("watch_poll_interval", "1s")
	v.SetDefault("ping_period", "54s")
	v.SetDefault("read_limit", 4096)
}

// Load reads config/config.<CONFIG_ENV>.yaml over the defaults.
// HALLWAY_* environment variables win over both.
func Load() (*Config, error) {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	return LoadFile(fmt.Sprintf("config/config.%s.yaml", env))
}

func LoadFile(fileName string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(fileName)
	v.SetEnvPrefix("HALLWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.RetryMaxAttempts == 0 {
		return nil, fmt.Errorf("retry_max_attempts must be positive")
	}
	log.Info().Str("module", "config").Str("mode", cfg.Mode).Int("port", cfg.Port).
		Str("store", cfg.StoreDriver).Msg("config ready")
	return &cfg, nil
}
