// Package cmd implements the recipegrab CLI using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/gaurav-prasanna/recipegrab/config"
	"github.com/gaurav-prasanna/recipegrab/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	flagConfigFile string

	v   = viper.New()
	cfg *config.Config
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "recipegrab",
	Short: "recipegrab: save web recipes as notes and build a shopping list",
	Long: `recipegrab reads the schema.org recipe data embedded in a web page and
saves it as a Markdown note (or JSON / PDF). Checked ingredients of a note
can then be merged into a shopping list with quantities added up.

Usage:
  recipegrab grab <url> [flags]
  recipegrab shopping add <note>
  recipegrab made <note>
  recipegrab serve`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = log.Sync()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfigFile, "config", "", "Config file (default: ./recipegrab.yaml or ~/.config/recipegrab/recipegrab.yaml)")
	flags.String("folder", "", "Folder for recipe notes")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: console or json")
	flags.Bool("debug", false, "Debug mode: debug logs including each normalized recipe")

	bindFlags(flags, map[string]string{
		"folder":     "folder",
		"log.level":  "log-level",
		"log.format": "log-format",
		"debug":      "debug",
	})
}

// bindFlags makes each flag override its config key when set.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag --%s: %v", name, err))
		}
	}
}

// loadConfig fills cfg and log before any subcommand runs.
func loadConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(v, flagConfigFile)
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.Log.Level
	if cfg.Debug {
		level = "debug"
	}
	log = logging.New(level, cfg.Log.Format)
	log.Debug("configuration loaded", zap.String("config_file", v.ConfigFileUsed()), zap.String("folder", cfg.Folder))
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
