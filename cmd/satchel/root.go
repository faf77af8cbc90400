// Root command for the satchel CLI.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dovetail-labs/satchel/internal/logger"
	"github.com/dovetail-labs/satchel/internal/paths"
	"github.com/dovetail-labs/satchel/pkg/satchel"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE, shared by all
// subcommands.
var (
	configDataDir string
	appLog        = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "satchel",
	Short: "Satchel is a personal assistant for contacts and notes",
	Long: `Satchel keeps an address book (names, phones, birthdays, emails,
addresses) and a list of tagged notes, stored locally on disk.

Contacts are managed with the "contact" subcommands, notes with the
"note" subcommands, and "birthdays" lists upcoming congratulation
dates.`,
	Version:       satchel.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)

		log, err := logger.New(cfg.GetString(cfgKeyLogLevel), cfg.GetString(cfgKeyLogFormat))
		if err != nil {
			return err
		}
		appLog = log
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = appLog.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.SuggestionsMinimumDistance = 2

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(birthdaysCmd)
}

// resolveDataDir returns the data directory path following the
// precedence: --data-dir flag > config.yaml data_dir > SATCHEL_DATA_DIR
// env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > SATCHEL_CONFIG_DIR env > platform
// default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
