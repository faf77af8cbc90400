// Init command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration and data files",
	Long: `Init creates the configuration directory with a default config.yaml
and the data directory with empty storage files. Existing files are
left untouched.

Example:
  satchel init
  satchel init --data-dir ~/satchel-data`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	// PersistentPreRunE already wrote config.yaml; attach once to lay
	// down the data files.
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	if err := backend.Detach(); err != nil {
		return fmt.Errorf("detach backend: %w", err)
	}

	fmt.Printf("Config directory: %s\n", configDir)
	fmt.Printf("Data directory:   %s\n", dataDir)
	fmt.Println("Satchel initialized.")
	return nil
}
