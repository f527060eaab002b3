// Root command for the prism CLI.
// Implements: prd006-prism-cli (R1, R6); prd010-configuration-directories (R1, R2, R8).
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/facets/internal/paths"
	"github.com/mesh-intelligence/facets/pkg/facet"
)

// Exit codes per prd006-prism-cli R8.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagHostsDir  string
	flagVerbose   bool
)

// appConfig holds the viper configuration loaded by PersistentPreRunE so
// all subcommands can read it.
var appConfig *viper.Viper

// configHostsDir holds the hosts_dir value loaded from config.yaml.
var configHostsDir string

// logger is the process-wide structured logger, built per invocation.
var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:     "prism",
	Short:   "Prism composes field-access capabilities onto host types",
	Version: facet.Version,
	Long: `Prism is the companion CLI for the facets library. It composes host
types from YAML descriptor files and walks through the library's
capabilities: keyed access, attribute access, iteration, reconstruction,
and representation.`,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if flagVerbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		// The version command needs no configuration.
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		appConfig, err = loadConfig(configDir)
		if err != nil {
			return err
		}

		configHostsDir = appConfig.GetString(cfgKeyHostsDir)
		logger.Debug("configuration loaded",
			zap.String("config_dir", configDir),
			zap.String("hosts_dir", configHostsDir))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagHostsDir, "hosts-dir", "", "host descriptor directory (default: $(CWD)/.prism-hosts)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(demoCmd)
}

// resolveConfigDir returns the configuration directory following prd010 R1.3
// precedence: --config-dir flag > PRISM_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveHostsDir returns the host descriptor directory following prd010 R2.3
// precedence: --hosts-dir flag > config.yaml hosts_dir > PRISM_HOSTS_DIR env >
// default $(CWD)/.prism-hosts.
func resolveHostsDir() (string, error) {
	return paths.ResolveHostsDir(flagHostsDir, configHostsDir)
}
