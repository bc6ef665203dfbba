package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wordtrends/internal/core/version"
)

func newInspectCmd(o *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Describe the loaded dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := o.dataset(cmd)
			if err != nil {
				return err
			}
			s := ds.Summary()

			p := o.printer(cmd)
			p.field("load id", s.ID)
			p.field("loaded at", s.LoadedAt.UTC().Format(time.RFC3339))
			p.field("categories", strings.Join(s.Categories, ", "))
			p.field("default", s.DefaultCategory)

			rows := make([][]string, 0, len(s.Tables))
			for _, t := range s.Tables {
				rows = append(rows, []string{
					t.Granularity.String(),
					t.Metric.String(),
					strconv.Itoa(t.Words),
					strconv.Itoa(t.Columns),
					strconv.Itoa(t.Buckets),
					t.First + ".." + t.Last,
					strings.Join(t.Categories, ", "),
				})
			}
			return p.table([]string{"GRANULARITY", "METRIC", "WORDS", "COLUMNS", "BUCKETS", "RANGE", "CATEGORIES"}, rows)
		},
	}
}

func newVersionCmd(o *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bi := version.InfoFor("wordtrends-query")
			p := o.printer(cmd)
			p.field(bi.Service, bi.Version)
			p.field("commit", bi.Commit)
			p.field("built", bi.Date)
			return nil
		},
	}
}
