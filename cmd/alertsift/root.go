package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Shipped threshold config and its CUE schema, used when present.
const (
	defaultConfigPath = "config/filters.yaml"
	defaultSchemaPath = "schemas/filters.cue"
)

var rootCmd = &cobra.Command{
	Use:   "alertsift",
	Short: "ZTF alert packet filter scanner",
	Long:  "alertsift scans a directory of ZTF-style Avro alert packets, applies candidate filters, and reports which alerts pass.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(showCmd)
}

// configOrBuiltin resolves the config and schema paths. Default paths
// pointing at files that do not exist fall back to the built-in
// thresholds; explicitly set paths are kept so a typo fails loudly.
func configOrBuiltin(cmd *cobra.Command, configPath, schemaPath string) (string, string) {
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(configPath); err != nil {
			return "", ""
		}
	}
	if !cmd.Flags().Changed("schema") {
		if _, err := os.Stat(schemaPath); err != nil {
			schemaPath = ""
		}
	}
	return configPath, schemaPath
}
