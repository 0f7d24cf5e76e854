package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// appConfig holds the configuration of the running command, loaded lazily
var appConfig *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podcastr",
	Short: "Podcastr podcast site and player server",
	Long: `Podcastr - A podcast site with a persistent audio player

Podcastr serves statically generated episode pages that are regenerated
in the background once they go stale, together with a small JSON API
that keeps each listener's player queue across page navigations.

Features:
  • Episode list and detail pages with incremental regeneration
  • Player state per listener session (queue, shuffle, loop)
  • Live player updates over WebSocket
  • Static export of the pre-rendered site`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"log-level": "logging.level",
	})
}

// bindFlags maps command line flags onto config keys so flags win over
// the settings file and environment
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		if flag := flags.Lookup(name); flag != nil {
			if err := viper.BindPFlag(key, flag); err != nil {
				log.Printf("[WARN] Failed to bind flag --%s: %v", name, err)
			}
		}
	}
}

// loadConfig loads the configuration when a command needs it
func loadConfig() error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	appConfig = cfg

	configureLogging(cfg.Logging.Level)
	return nil
}

// configureLogging sets the log prefix flags and the gin mode for level
func configureLogging(level string) {
	switch strings.ToLower(level) {
	case "debug":
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
		gin.SetMode(gin.DebugMode)
	default:
		log.SetFlags(log.LstdFlags)
		gin.SetMode(gin.ReleaseMode)
	}
}
