package cli

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"wordtrends/internal/core/metric"
	"wordtrends/internal/services/api/trends/domain"
)

// selectFlags are the extraction flags of series and chart
type selectFlags struct {
	granularity string
	metric      string
	categories  []string
}

func (s *selectFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&s.granularity, "granularity", "g", "", "monthly or yearly (default monthly)")
	f.StringVarP(&s.metric, "metric", "m", "", "freq, prop or rank (default freq)")
	f.StringSliceVarP(&s.categories, "categories", "c", nil, "communities to plot (default: the dataset default)")
}

func (s *selectFlags) input(args []string) domain.SeriesInput {
	return domain.SeriesInput{
		Granularity: s.granularity,
		Metric:      s.metric,
		Words:       strings.Join(args, ","),
		Categories:  s.categories,
	}
}

func newSeriesCmd(o *rootOpts) *cobra.Command {
	var (
		sel    selectFlags
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "series WORDS...",
		Short: "Print the series of one or more words",
		Long: `Print one column per (word, community) pair and one row per time bucket.

Words may be given as separate arguments or comma separated. Words missing
from the table are reported on stderr.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := o.service(cmd)
			if err != nil {
				return err
			}
			fig, err := svc.Series(cmd.Context(), sel.input(args))
			if err != nil {
				return err
			}

			p := o.printer(cmd)
			if asJSON {
				enc := json.NewEncoder(p.out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(fig); err != nil {
					return err
				}
			} else if err := p.table(seriesTable(fig)); err != nil {
				return err
			}
			p.notFound(fig.NotFound)
			return nil
		},
	}
	sel.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the figure as JSON")
	return cmd
}

// seriesTable lays a figure out with time down and traces across
// absent values print as "-"
func seriesTable(fig domain.Figure) ([]string, [][]string) {
	pres := metric.Present(fig.Metric)
	header := make([]string, 0, len(fig.Traces)+1)
	header = append(header, fig.XAxis.Title)
	for _, t := range fig.Traces {
		header = append(header, t.Name)
	}

	rows := make([][]string, 0, len(fig.XAxis.Labels))
	for i, label := range fig.XAxis.Labels {
		row := make([]string, 0, len(header))
		row = append(row, label)
		for _, t := range fig.Traces {
			if t.Values.IsAbsent(i) {
				row = append(row, "-")
				continue
			}
			row = append(row, pres.Format(t.Values[i]))
		}
		rows = append(rows, row)
	}
	return header, rows
}
