package redis

import (
	"errors"
	"fmt"
	"time"
)

// Config describes the server to dial, the connection pool and the TTL of each named cache.
type Config struct {
	Host     string
	Port     int
	Password string
	// Database must be within 0..15
	Database int
	Pool     PoolConfig
	// CacheTTLs overrides DefaultCacheTTL per cache name
	CacheTTLs       map[string]time.Duration
	DefaultCacheTTL time.Duration
}

type PoolConfig struct {
	MinIdleConns int
	MaxIdleConns int
	MaxActive    int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	WaitTimeout  time.Duration
}

func NewRedisConfig() *Config {
	return &Config{
		Host: "localhost",
		Port: 6379,
		Pool: PoolConfig{
			MinIdleConns: 5,
			MaxIdleConns: 10,
			MaxActive:    100,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			WaitTimeout:  4 * time.Second,
		},
		CacheTTLs:       make(map[string]time.Duration),
		DefaultCacheTTL: time.Hour,
	}
}

func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

func (c *Config) WithDatabase(database int) *Config {
	c.Database = database
	return c
}

func (c *Config) WithCacheTTL(cacheName string, ttl time.Duration) *Config {
	if c.CacheTTLs == nil {
		c.CacheTTLs = make(map[string]time.Duration)
	}
	c.CacheTTLs[cacheName] = ttl
	return c
}

// TTL returns the expiration for entries of the named cache
func (c *Config) TTL(cacheName string) time.Duration {
	if ttl, ok := c.CacheTTLs[cacheName]; ok {
		return ttl
	}
	return c.DefaultCacheTTL
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Host == "" {
		errs = append(errs, errors.New("host cannot be empty"))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d, must be between 1 and 65535", c.Port))
	}
	if c.Database < 0 || c.Database > 15 {
		errs = append(errs, fmt.Errorf("invalid database %d, must be between 0 and 15", c.Database))
	}
	if c.Pool.MinIdleConns < 0 || c.Pool.MaxIdleConns < 0 || c.Pool.MaxActive < 0 || c.Pool.MaxRetries < 0 {
		errs = append(errs, errors.New("pool sizes and retries must be non-negative"))
	}
	if c.Pool.DialTimeout < 0 || c.Pool.ReadTimeout < 0 || c.Pool.WriteTimeout < 0 || c.Pool.WaitTimeout < 0 {
		errs = append(errs, errors.New("pool timeouts must be non-negative"))
	}
	for name, ttl := range c.CacheTTLs {
		if ttl < 0 {
			errs = append(errs, fmt.Errorf("invalid TTL %v for cache %q", ttl, name))
		}
	}
	return errors.Join(errs...)
}
