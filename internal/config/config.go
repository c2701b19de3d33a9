// Package config resolves the server settings once at startup.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const devSessionSecret = "dev_fallback_secret"

// Config holds everything the server needs; nothing reads the environment after Load.
type Config struct {
	Port          string
	DSN           string
	SessionSecret string
	PublicBaseURL string
	UploadDir     string
	ProductsPath  string
	LogLevel      string
	GinMode       string
}

// Load reads .env from the current directory and its parents (so the
// binary works when started from cmd/server), then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("SESSION_SECRET", devSessionSecret)
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:3000")
	v.SetDefault("UPLOAD_DIR", "public/images")
	v.SetDefault("PRODUCTS_PATH", "/san-pham")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "debug")

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:          v.GetString("APP_PORT"),
		DSN:           v.GetString("DB_DSN"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		PublicBaseURL: strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		UploadDir:     v.GetString("UPLOAD_DIR"),
		ProductsPath:  trimPath(v.GetString("PRODUCTS_PATH")),
		LogLevel:      v.GetString("LOG_LEVEL"),
		GinMode:       v.GetString("GIN_MODE"),
	}
}

func trimPath(p string) string {
	if len(p) > 1 {
		return strings.TrimRight(p, "/")
	}
	return p
}

// Validate reports the first setting that would make the server unusable.
func (c *Config) Validate() error {
	if c.DSN == "" {
		return errors.New("DB_DSN is empty (check your .env)")
	}
	u, err := url.Parse(c.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("PUBLIC_BASE_URL: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("PUBLIC_BASE_URL must be absolute, got %q", c.PublicBaseURL)
	}
	if !strings.HasPrefix(c.ProductsPath, "/") {
		return fmt.Errorf("PRODUCTS_PATH must start with /, got %q", c.ProductsPath)
	}
	if c.UploadDir == "" {
		return errors.New("UPLOAD_DIR is empty")
	}
	switch c.GinMode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	return nil
}

// InsecureSecret reports whether the session cookie would be signed with the built-in secret.
func (c *Config) InsecureSecret() bool {
	return c.SessionSecret == devSessionSecret
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
