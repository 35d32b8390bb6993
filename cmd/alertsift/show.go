package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"alertsift/internal/alert"
	"alertsift/internal/config"
	"alertsift/internal/filter"
)

var (
	showFilterName string
	showConfigPath string
	showSchemaPath string
)

var showCmd = &cobra.Command{
	Use:   "show <alert-file>",
	Short: "Decode one alert file and explain the filter verdict",
	Long:  "show prints the candidate fields of a single alert packet and how each cut of the chosen filter evaluated.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, schemaPath := configOrBuiltin(cmd, showConfigPath, showSchemaPath)
		cfg, err := config.Load(configPath, schemaPath)
		if err != nil {
			return err
		}
		f, err := filter.New(showFilterName, cfg.Filters)
		if err != nil {
			return err
		}

		a, err := alert.ReadFile(args[0])
		if err != nil {
			return err
		}
		res, err := f.Evaluate(a)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "object\t%s\n", a.ObjectID)
		fmt.Fprintf(tw, "candid\t%d\n", a.Candid)
		fmt.Fprintf(tw, "file\t%s\n\n", a.Path)
		for _, c := range res.Criteria {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark(c.Pass), c.Name, c.Threshold, c.Actual)
		}
		fmt.Fprintf(tw, "\nverdict\t%s (%s)\n", mark(res.Pass), f.Name())
		return tw.Flush()
	},
}

func mark(pass bool) string {
	if pass {
		return "\x1b[32mPASS\x1b[0m"
	}
	return "\x1b[31mFAIL\x1b[0m"
}

func init() {
	showCmd.Flags().StringVar(&showFilterName, "filter", filter.NameVeto,
		fmt.Sprintf("Filter to apply (%v)", filter.Names()))
	showCmd.Flags().StringVar(&showConfigPath, "config", defaultConfigPath, "Path to filter threshold YAML (built-in defaults when absent)")
	showCmd.Flags().StringVar(&showSchemaPath, "schema", defaultSchemaPath, "Path to CUE schema validating the config")
}
