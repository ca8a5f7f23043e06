package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/oranolio956/qa-automation-framework-sub005/internal/config"
	"github.com/oranolio956/qa-automation-framework-sub005/internal/observability"
)

var cfgFile string

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "stealthctl",
	Short: "Inspection tool for the behavioral stealth engine.",
	Long: `stealthctl is a thin harness over the stealth engine library: it derives
device fingerprints, samples persona timing distributions and synthesizes
gesture paths, printing the results as JSON for the device driver and the
orchestrator to consume.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(); err != nil {
			return fmt.Errorf("failed to initialize configuration: %w", err)
		}

		if err := config.Load(viper.GetViper()); err != nil {
			return err
		}

		observability.InitializeLogger(config.Get().Logger)
		observability.GetLogger().Debug("configuration loaded",
			zap.String("config_file", viper.ConfigFileUsed()))
		return nil
	},
}

// Execute runs the root command. It accepts a context from main for graceful
// shutdown.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if ctx.Err() == nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(fingerprintCmd)
	rootCmd.AddCommand(behaviorCmd)
	rootCmd.AddCommand(gestureCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeConfig reads the config file and environment, with defaults so
// the tool runs with no config at all.
func initializeConfig() error {
	v := viper.GetViper()
	config.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("STEALTH")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults carry the tool.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// printJSON writes v to stdout as indented JSON, the output contract of every
// subcommand.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
