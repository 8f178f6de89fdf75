package cli

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// NewRootCommand represents the base command when called without any
// subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tracescout",
		Short: "Tracescout - Playwright trace finder and launcher",
		Long: `Tracescout locates the trace archive a Playwright test run produced for a
given test name, finds the matching playwright.ps1 launcher script in the
build output, and opens the Playwright trace viewer against them.

It performs no indexing: every invocation searches the workspace tree fresh,
ranking candidates by name similarity, location and recency.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.AddCommand(newOpenCommand())
	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute runs the root command and maps every failure to exactly one
// user-visible message.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}
