// Package cli is the wordtrends-query command tree
// it loads the same dataset as the API and runs the same trends service in process
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"wordtrends/internal/core/dataset"
	"wordtrends/internal/core/series"
	"wordtrends/internal/platform/config"
	trendssvc "wordtrends/internal/services/api/trends/service"
)

// LoadFlags are the dataset selection flags shared by every subcommand
type LoadFlags struct {
	Manifest    string
	MonthlyOnly bool
}

// Loader builds the dataset a command runs against
type Loader func(ctx context.Context, f LoadFlags) (*dataset.Dataset, error)

// DefaultLoader reads CORE_DATASET_* and lets the flags override the manifest and variant
func DefaultLoader(ctx context.Context, f LoadFlags) (*dataset.Dataset, error) {
	set, err := dataset.FromConfig(config.New().Prefix("CORE_DATASET_"))
	if err != nil {
		return nil, err
	}
	if f.Manifest != "" {
		m, err := dataset.LoadManifest(f.Manifest)
		if err != nil {
			return nil, err
		}
		set.Manifest = m
	}
	if f.MonthlyOnly {
		set.Manifest = set.Manifest.MonthlyOnly()
	}
	return dataset.Load(ctx, set.Manifest, set.Load)
}

type rootOpts struct {
	load    Loader
	flags   LoadFlags
	missing string
	noColor bool
}

// NewRootCmd builds the command tree around load
func NewRootCmd(load Loader) *cobra.Command {
	o := &rootOpts{load: load}
	root := &cobra.Command{
		Use:   "wordtrends-query",
		Short: "Query word usage series from the command line",
		Long: `wordtrends-query loads the word usage tables and prints series or writes charts.

Examples:
  wordtrends-query inspect                          # what is loaded
  wordtrends-query series cat,dog                   # monthly frequency in the default community
  wordtrends-query series cat -m rank -g yearly -c politics,Liberal
  wordtrends-query chart cat,dog -o cats.svg        # write a chart image`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.flags.Manifest, "manifest", "", "dataset manifest yaml (default: CORE_DATASET_MANIFEST or the built-in sources)")
	pf.BoolVar(&o.flags.MonthlyOnly, "monthly-only", false, "skip the yearly tables")
	pf.StringVar(&o.missing, "missing", series.ZeroFill.Name(), "missing value policy: zero or absent")
	pf.BoolVar(&o.noColor, "no-color", false, "disable colored notes")

	root.AddCommand(
		newSeriesCmd(o),
		newChartCmd(o),
		newInspectCmd(o),
		newVersionCmd(o),
	)
	return root
}

func (o *rootOpts) printer(cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), o.noColor)
}

func (o *rootOpts) dataset(cmd *cobra.Command) (*dataset.Dataset, error) {
	return o.load(cmd.Context(), o.flags)
}

// service loads the dataset and builds an uncached trends service over it
func (o *rootOpts) service(cmd *cobra.Command) (trendssvc.Service, error) {
	policy, err := series.PolicyByName(o.missing)
	if err != nil {
		return nil, err
	}
	ds, err := o.dataset(cmd)
	if err != nil {
		return nil, err
	}
	return trendssvc.New(ds, trendssvc.Options{Policy: policy})
}
