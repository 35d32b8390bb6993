package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"alertsift/internal/config"
	"alertsift/internal/filter"
	"alertsift/internal/logging"
	"alertsift/internal/scan"
	"alertsift/internal/tui"
)

var (
	scanInput      string
	scanPattern    string
	scanFilterName string
	scanConfigPath string
	scanSchemaPath string
	scanLogFile    string
	scanColor      bool
	scanObjects    bool
	scanTUI        bool
	scanFailFast   bool
	scanVerbose    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a directory of alert packets through a filter",
	Long:  "scan reads every matching Avro alert file, evaluates the chosen filter, prints passing alerts as they are found, and ends with a pass count.",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, schemaPath := configOrBuiltin(cmd, scanConfigPath, scanSchemaPath)
		cfg, err := config.Load(configPath, schemaPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("fail-fast") {
			cfg.Scan.FailFast = scanFailFast
		}
		pattern := cfg.Scan.Pattern
		if cmd.Flags().Changed("pattern") {
			pattern = scanPattern
		}

		f, err := filter.New(scanFilterName, cfg.Filters)
		if err != nil {
			return err
		}

		// The browser needs a real terminal; otherwise fall back to
		// plain output.
		interactive := scanTUI && term.IsTerminal(int(os.Stdout.Fd()))

		// The supernova filter always reports objectIds as discovered.
		objects := scanObjects || scanFilterName == filter.NameSupernova

		collector := &scan.CollectWriter{}
		writer, summaryWriter, cleanup, err := newWriters(scanColor, objects, interactive, scanLogFile, collector)
		if err != nil {
			return err
		}
		defer cleanup()

		log := logging.New(scanVerbose)
		ctx := logging.NewContext(cmd.Context(), log)

		scanner := scan.New(f, writer, summaryWriter, scan.Options{FailFast: cfg.Scan.FailFast})
		sum, err := scanner.Run(ctx, scanInput, pattern)
		if err != nil {
			return err
		}

		if interactive {
			return tui.Run(sum, collector.Rows)
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanInput, "input", "", "Directory holding Avro alert files")
	scanCmd.Flags().StringVar(&scanPattern, "pattern", "*.avro", "Glob pattern for alert files within the input directory")
	scanCmd.Flags().StringVar(&scanFilterName, "filter", filter.NameVeto,
		fmt.Sprintf("Filter to apply (%v)", filter.Names()))
	scanCmd.Flags().StringVar(&scanConfigPath, "config", defaultConfigPath, "Path to filter threshold YAML (built-in defaults when absent)")
	scanCmd.Flags().StringVar(&scanSchemaPath, "schema", defaultSchemaPath, "Path to CUE schema validating the config")
	scanCmd.Flags().StringVar(&scanLogFile, "log-file", "", "Path to export passing alerts (JSONL)")
	scanCmd.Flags().BoolVar(&scanColor, "color", false, "Human-friendly colorized output instead of JSON lines")
	scanCmd.Flags().BoolVar(&scanObjects, "objects", false, "Print only the objectId of each passing alert (always on for the supernova filter)")
	scanCmd.Flags().BoolVar(&scanTUI, "tui", false, "Browse results interactively after the scan")
	scanCmd.Flags().BoolVar(&scanFailFast, "fail-fast", false, "Abort on the first unreadable alert file instead of skipping it")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Debug logging")
	scanCmd.MarkFlagRequired("input")
}
