package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fomox/tracescout/internal/config"
)

// newConfigCommand creates the config subcommand
func newConfigCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Config prints the merged configuration the search commands would run with:
defaults, then the discovered config file, then TRACESCOUT_* environment
variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path")
	return cmd
}

func runConfig(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return describeFailure(err, "", "")
	}

	out := cmd.OutOrStdout()
	source := cfg.Source
	if source == "" {
		source = "(defaults and environment only)"
	}

	fmt.Fprintln(out, labelStyle.Render("source        ")+source)
	fmt.Fprintln(out, labelStyle.Render("roots         ")+formatList(cfg.Roots))
	fmt.Fprintln(out, labelStyle.Render("flavor        ")+cfg.Flavor)
	fmt.Fprintln(out, labelStyle.Render("match         ")+cfg.Match)
	fmt.Fprintln(out, labelStyle.Render("max results   ")+fmt.Sprintf("%d", cfg.MaxResults))
	fmt.Fprintln(out, labelStyle.Render("extra patterns")+" "+formatList(cfg.ExtraPatterns))
	return nil
}

func formatList(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
