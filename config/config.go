// Package config loads recipegrab settings from flags, RECIPEGRAB_*
// environment variables, an optional .env file and recipegrab.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "RECIPEGRAB"

// Config holds every recipegrab setting.
type Config struct {
	// Folder is where recipe notes are written.
	Folder string `mapstructure:"folder"`
	// TemplateFile is a custom note template; empty means the built-in one.
	TemplateFile     string `mapstructure:"template_file"`
	ShoppingListFile string `mapstructure:"shopping_list_file"`
	DecodeEntities   bool   `mapstructure:"decode_entities"`
	CleanHTML        bool   `mapstructure:"clean_html"`
	Debug            bool   `mapstructure:"debug"`

	Log    LogConfig    `mapstructure:"log"`
	Fetch  FetchConfig  `mapstructure:"fetch"`
	Crawl  CrawlConfig  `mapstructure:"crawl"`
	Server ServerConfig `mapstructure:"server"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type FetchConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

type CrawlConfig struct {
	MaxPages int `mapstructure:"max_pages"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("folder", "")
	v.SetDefault("template_file", "")
	v.SetDefault("shopping_list_file", "Shopping List.md")
	v.SetDefault("decode_entities", true)
	v.SetDefault("clean_html", true)
	v.SetDefault("debug", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("fetch.timeout", "30s")
	v.SetDefault("fetch.user_agent", "Mozilla/5.0 (compatible; recipegrab/1.0)")

	v.SetDefault("crawl.max_pages", 100)

	v.SetDefault("server.addr", ":8080")
}

// Load reads configuration into v and decodes it. configFile, when set,
// replaces the recipegrab.yaml search. A missing .env or recipegrab.yaml
// is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("recipegrab")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "recipegrab"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that would make commands fail later.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ShoppingListFile) == "" {
		return fmt.Errorf("shopping_list_file is required")
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive")
	}
	if c.Crawl.MaxPages <= 0 {
		return fmt.Errorf("crawl.max_pages must be positive")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log.format %q", c.Log.Format)
	}
	return nil
}

// ShoppingListPath is the shopping list file, relative to Folder unless
// it is absolute.
func (c *Config) ShoppingListPath() string {
	if filepath.IsAbs(c.ShoppingListFile) {
		return c.ShoppingListFile
	}
	return filepath.Join(c.Folder, c.ShoppingListFile)
}
