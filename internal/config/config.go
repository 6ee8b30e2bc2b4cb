// Package config loads host configuration from an optional file plus
// TRUCKREC_* environment overrides, with defaults in code.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/prakashgarg91/Truck-Opti-sub001/internal/score"
)

type Config struct {
	Server ServerConfig  `mapstructure:"server"`
	Engine EngineConfig  `mapstructure:"engine"`
	Cache  CacheConfig   `mapstructure:"cache"`
	Log    LogConfig     `mapstructure:"log"`
	MCDA   score.Weights `mapstructure:"mcda"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimit       float64       `mapstructure:"rate_limit"` // recommend requests/sec
	RateBurst       int           `mapstructure:"rate_burst"`
}

type EngineConfig struct {
	Workers     int    `mapstructure:"workers"`
	TopN        int    `mapstructure:"top_n"`
	CatalogPath string `mapstructure:"catalog_path"`
}

type CacheConfig struct {
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the optional config file at path (empty means defaults +
// env only).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.rate_limit", 20.0)
	v.SetDefault("server.rate_burst", 40)
	v.SetDefault("engine.workers", 0) // 0 = NumCPU
	v.SetDefault("engine.top_n", 3)
	v.SetDefault("engine.catalog_path", "config/trucks.yaml")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("log.level", "info")
	w := score.DefaultWeights()
	v.SetDefault("mcda.space", w.Space)
	v.SetDefault("mcda.cost", w.Cost)
	v.SetDefault("mcda.ease", w.Ease)
	v.SetDefault("mcda.reliability", w.Reliability)

	v.SetEnvPrefix("TRUCKREC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
