package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"rent-quote/domain"
)

const (
	DefaultConfigFile = "configs/config.yaml"
	envPrefix         = "RENTQUOTE"
)

type Config struct {
	Server struct {
		Port            int           `mapstructure:"port"`
		ReadTimeout     time.Duration `mapstructure:"read_timeout"`
		WriteTimeout    time.Duration `mapstructure:"write_timeout"`
		IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`

	RateLimit struct {
		Capacity int           `mapstructure:"capacity"`
		Window   time.Duration `mapstructure:"window"`
	} `mapstructure:"rate_limit"`

	Redis struct {
		Enabled  bool   `mapstructure:"enabled"`
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	Contract struct {
		Total        float64 `mapstructure:"total"`
		Installments int     `mapstructure:"installments"`
	} `mapstructure:"contract"`
}

// Load reads the optional YAML file at path, then RENTQUOTE_* environment
// variables (e.g. RENTQUOTE_REDIS_ADDR). A missing file is not an error;
// the defaults are enough to run.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	if path == "" {
		path = DefaultConfigFile
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("rate_limit.capacity", 5)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("contract.total", domain.DefaultContractTotal)
	v.SetDefault("contract.installments", domain.DefaultContractInstallments)
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("invalid rate_limit.capacity %d", c.RateLimit.Capacity)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("invalid rate_limit.window %s", c.RateLimit.Window)
	}
	if c.Contract.Installments <= 0 {
		return fmt.Errorf("invalid contract.installments %d", c.Contract.Installments)
	}
	if c.Contract.Total < 0 {
		return fmt.Errorf("invalid contract.total %.2f", c.Contract.Total)
	}
	return nil
}

func (c *Config) ContractTerms() domain.ContractTerms {
	return domain.ContractTerms{
		Total:        c.Contract.Total,
		Installments: c.Contract.Installments,
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
