package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fomox/tracescout/internal/application"
	"github.com/fomox/tracescout/internal/core/ports"
	"github.com/fomox/tracescout/internal/core/trace"
	"github.com/fomox/tracescout/internal/core/workspace"
	"github.com/fomox/tracescout/internal/infrastructure/fsearch"
	"github.com/fomox/tracescout/internal/infrastructure/process"
)

// Seams for command tests; production wiring uses the OS-backed
// implementations.
var (
	newSearcher = func() ports.FileSearcher { return fsearch.New() }
	newLauncher = func() ports.ViewerLauncher { return process.NewLauncher() }
)

// newOpenCommand creates the open subcommand
func newOpenCommand() *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "open <test name>",
		Short: "Find a test's trace archive and open the Playwright trace viewer",
		Long: `Open locates the playwright.ps1 launcher script in the build output and the
trace archive matching the given test name, then runs
pwsh <script> show-trace <archive> in the workspace root.

Examples:
  tracescout open "Shows Login Form" --root ~/src/shop
  tracescout open "Checkout succeeds" --root ~/src/shop --flavor Release
  tracescout open "Shows Login Form" --pattern "**/artifacts/*.zip"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd, flags, strings.Join(args, " "))
		},
	}

	flags.register(cmd)
	return cmd
}

func runOpen(cmd *cobra.Command, flags *searchFlags, rawName string) error {
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

	root, err := workspace.PickRoot(cfg.Roots, id.Origin())
	if err != nil {
		return describeFailure(err, cfg.Flavor, id.Name())
	}

	resolver := application.NewResolver(newSearcher())
	launcher := newLauncher()

	var pair trace.ResolvedPair
	err = withStatus(fmt.Sprintf("Opening trace for %q...", id.Name()), func() error {
		resolved, err := resolver.Resolve(ctx, id, cfg.Roots, searchCfg)
		if err != nil {
			return err
		}
		pair = resolved
		return launcher.Launch(ctx, pair, root)
	})
	if err != nil {
		return describeFailure(err, cfg.Flavor, id.Name())
	}

	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Opened trace viewer"))
	fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("  script  ")+pathStyle.Render(pair.LauncherScript))
	fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("  archive ")+pathStyle.Render(pair.TraceArchive))
	return nil
}
