package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"wordtrends/internal/services/api/trends/domain"
)

func newChartCmd(o *rootOpts) *cobra.Command {
	var (
		sel    selectFlags
		out    string
		format string
		width  int
		height int
	)
	cmd := &cobra.Command{
		Use:   "chart WORDS...",
		Short: "Write a chart image of one or more words",
		Long: `Render the same chart the API serves and write it to a file, or stdout with -o -.

The format defaults to the output file extension when it is .svg or .png.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = formatFromPath(out)
			}
			svc, err := o.service(cmd)
			if err != nil {
				return err
			}
			img, err := svc.Chart(cmd.Context(), domain.ChartQuery{
				SeriesInput: sel.input(args),
				Format:      format,
				Width:       width,
				Height:      height,
			})
			if err != nil {
				return err
			}

			p := o.printer(cmd)
			if out == "-" {
				if _, err := p.out.Write(img.Data); err != nil {
					return err
				}
			} else {
				if err := os.WriteFile(out, img.Data, 0o644); err != nil {
					return err
				}
				p.field("wrote", fmt.Sprintf("%s (%s, %d bytes)", out, img.ContentType, len(img.Data)))
			}
			p.notFound(img.NotFound)
			return nil
		},
	}
	sel.bind(cmd)
	f := cmd.Flags()
	f.StringVarP(&out, "output", "o", "chart.svg", "output file, - for stdout")
	f.StringVar(&format, "format", "", "svg or png")
	f.IntVar(&width, "width", 0, "image width in pixels (0 for the default)")
	f.IntVar(&height, "height", 0, "image height in pixels (0 for the default)")
	return cmd
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".svg":
		return "svg"
	}
	return ""
}
