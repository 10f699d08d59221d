package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/fuelco2/internal/config"
	"github.com/rshade/fuelco2/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the fuelco2 CLI.
// It loads configuration, wires up logging and registers the subcommands
// (calc, interactive, config, version).
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "fuelco2",
		Short:   "Estimate CO2 emissions from coal and gas consumption",
		Long:    "fuelco2: convert dated fuel consumption into CO2 emission series",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, err := resolveConfigPath(cmd, lookupEnv)
			if err != nil {
				return err
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $FUELCO2_HOME/config.yaml or ~/.fuelco2/config.yaml)")
	cmd.AddCommand(newCalcCmd(), newInteractiveCmd(), newConfigCmd(), newVersionCmd(ver))

	return cmd
}

// resolveConfigPath returns --config, then $FUELCO2_CONFIG, then the default path.
func resolveConfigPath(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	if path, ok := lookupEnv("FUELCO2_CONFIG"); ok && path != "" {
		return path, nil
	}

	path, err := config.DefaultConfigPath()
	if err != nil {
		return "", fmt.Errorf("resolving config path: %w", err)
	}
	return path, nil
}

const rootCmdExample = `  # Record coal and gas consumption and print a table
  fuelco2 calc --coal 2024-03-01=10 --gas 2024-03-01=4 --gas 2024-03-02=7

  # Read entries from a file and draw a chart
  fuelco2 calc --file entries.yaml --output chart

  # Export line protocol for InfluxDB
  fuelco2 calc --file entries.yaml --output lineprotocol

  # Open the interactive form
  fuelco2 interactive

  # Initialize configuration
  fuelco2 config init`

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
