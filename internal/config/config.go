package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const defaultPath = "config.yaml"

type Config struct {
	AppPort string `yaml:"app_port"`

	// Empty RedisAddr disables rate limiting.
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`

	ChartWidth  int `yaml:"chart_width"`
	ChartHeight int `yaml:"chart_height"`
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return d, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", k, v, err)
	}
	return n, nil
}

// Load reads the YAML file named by FINCALC_CONFIG (default config.yaml,
// optional) and then applies environment overrides.
func Load() (*Config, error) {
	c := &Config{
		AppPort:            "8080",
		RateLimitPerMinute: 60,
		ChartWidth:         640,
		ChartHeight:        480,
	}

	path := getenv("FINCALC_CONFIG", defaultPath)
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	c.AppPort = getenv("APP_PORT", c.AppPort)
	c.RedisAddr = getenv("REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = getenv("REDIS_PASSWORD", c.RedisPassword)
	for _, o := range []struct {
		key string
		dst *int
	}{
		{"REDIS_DB", &c.RedisDB},
		{"RATE_LIMIT_PER_MINUTE", &c.RateLimitPerMinute},
		{"CHART_WIDTH", &c.ChartWidth},
		{"CHART_HEIGHT", &c.ChartHeight},
	} {
		n, err := getenvInt(o.key, *o.dst)
		if err != nil {
			return nil, err
		}
		*o.dst = n
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if _, err := net.LookupPort("tcp", c.AppPort); err != nil {
		return fmt.Errorf("invalid APP_PORT %q: %w", c.AppPort, err)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE %d: must not be negative", c.RateLimitPerMinute)
	}
	if c.ChartWidth < 100 || c.ChartWidth > 4000 || c.ChartHeight < 100 || c.ChartHeight > 4000 {
		return fmt.Errorf("invalid chart size %dx%d: each side must be within 100..4000", c.ChartWidth, c.ChartHeight)
	}
	return nil
}

// RateLimited reports whether the calculation routes should be throttled.
func (c *Config) RateLimited() bool { return c.RedisAddr != "" && c.RateLimitPerMinute > 0 }
