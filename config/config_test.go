package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with an empty home.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "Shopping List.md", cfg.ShoppingListFile)
	assert.True(t, cfg.DecodeEntities)
	assert.True(t, cfg.CleanHTML)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 100, cfg.Crawl.MaxPages)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_FileEnvAndDotenv(t *testing.T) {
	dir := isolate(t)
	yaml := "folder: Recipes\nfetch:\n  timeout: 5s\ncrawl:\n  max_pages: 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "recipegrab.yaml"), []byte(yaml), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RECIPEGRAB_SERVER_ADDR=:9999\n"), 0o644))
	t.Setenv("RECIPEGRAB_LOG_LEVEL", "debug")
	// Registers cleanup of the variable godotenv is about to set.
	t.Setenv("RECIPEGRAB_SERVER_ADDR", "")
	os.Unsetenv("RECIPEGRAB_SERVER_ADDR")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "Recipes", cfg.Folder)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 7, cfg.Crawl.MaxPages)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, filepath.Join("Recipes", "Shopping List.md"), cfg.ShoppingListPath())
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	dir := isolate(t)

	_, err := Load(viper.New(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)
	t.Setenv("RECIPEGRAB_LOG_FORMAT", "xml")

	_, err := Load(viper.New(), "")
	assert.ErrorContains(t, err, "log.format")
}

func TestValidate(t *testing.T) {
	valid := Config{
		ShoppingListFile: "list.md",
		Log:              LogConfig{Format: "json"},
		Fetch:            FetchConfig{Timeout: time.Second},
		Crawl:            CrawlConfig{MaxPages: 1},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty list file", func(c *Config) { c.ShoppingListFile = " " }},
		{"zero timeout", func(c *Config) { c.Fetch.Timeout = 0 }},
		{"zero max pages", func(c *Config) { c.Crawl.MaxPages = 0 }},
		{"unknown format", func(c *Config) { c.Log.Format = "text" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestShoppingListPath_Absolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "list.md")
	c := Config{Folder: "Recipes", ShoppingListFile: abs}
	assert.Equal(t, abs, c.ShoppingListPath())
}
