package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fomox/tracescout/internal/application"
	"github.com/fomox/tracescout/internal/core/trace"
)

// newResolveCommand creates the resolve subcommand
func newResolveCommand() *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "resolve <test name>",
		Short: "Locate the launcher script and trace archive without launching",
		Long: `Resolve runs the same two searches as open but only prints the resolved
paths, one per line, for scripting or debugging match behavior.

Examples:
  tracescout resolve "Shows Login Form" --root ~/src/shop
  tracescout resolve "Shows Login Form" --root ~/src/shop --match filename`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, flags, strings.Join(args, " "))
		},
	}

	flags.register(cmd)
	return cmd
}

func runResolve(cmd *cobra.Command, flags *searchFlags, rawName string) error {
	ctx := cmd.Context()

	cfg, err := flags.loadConfig(cmd)
	if err != nil {
		return describeFailure(err, "", rawName)
	}

	id, err := trace.NewTestIdentifier(rawName, flags.origin)
	if err != nil {
		return describeFailure(err, cfg.Flavor, rawName)
	}

	searchCfg, err := cfg.Search()
	if err != nil {
		return describeFailure(err, cfg.Flavor, id.Name())
	}

	resolver := application.NewResolver(newSearcher())

	var pair trace.ResolvedPair
	err = withStatus(fmt.Sprintf("Searching trace for %q...", id.Name()), func() error {
		resolved, err := resolver.Resolve(ctx, id, cfg.Roots, searchCfg)
		if err != nil {
			return err
		}
		pair = resolved
		return nil
	})
	if err != nil {
		return describeFailure(err, cfg.Flavor, id.Name())
	}

	fmt.Fprintln(cmd.OutOrStdout(), pair.LauncherScript)
	fmt.Fprintln(cmd.OutOrStdout(), pair.TraceArchive)
	return nil
}
