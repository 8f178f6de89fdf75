package cli

import (
	"github.com/spf13/cobra"

	"github.com/fomox/tracescout/internal/config"
)

// searchFlags are the knobs shared by the open and resolve commands. Flag
// values override the file/environment configuration only when explicitly
// set.
type searchFlags struct {
	configPath    string
	roots         []string
	origin        string
	flavor        string
	match         string
	maxResults    int
	extraPatterns []string
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Config file path (default scans ./tracescout.{yaml,yml,json} and ~/.config/tracescout/)")
	cmd.Flags().StringSliceVar(&f.roots, "root", nil, "Workspace root to search (repeatable; first one is the default)")
	cmd.Flags().StringVar(&f.origin, "origin", "", "File the test is declared in, used to pick among multiple roots")
	cmd.Flags().StringVar(&f.flavor, "flavor", "", "Build flavor whose output tree holds the launcher script (Debug or Release)")
	cmd.Flags().StringVar(&f.match, "match", "", "Name matching strategy: filename, path or both")
	cmd.Flags().IntVar(&f.maxResults, "max-results", 0, "Cap on enumerated files per search")
	cmd.Flags().StringSliceVar(&f.extraPatterns, "pattern", nil, "Extra glob pattern for trace archives (repeatable)")
}

// loadConfig builds the effective configuration: defaults, then config file,
// then environment, then any flags changed on cmd.
func (f *searchFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("root") {
		cfg.Roots = f.roots
	}
	if cmd.Flags().Changed("flavor") {
		cfg.Flavor = f.flavor
	}
	if cmd.Flags().Changed("match") {
		cfg.Match = f.match
	}
	if cmd.Flags().Changed("max-results") {
		cfg.MaxResults = f.maxResults
	}
	if cmd.Flags().Changed("pattern") {
		cfg.ExtraPatterns = append(cfg.ExtraPatterns, f.extraPatterns...)
	}

	return cfg, nil
}
