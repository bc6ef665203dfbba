package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"wordtrends/internal/core/chart"
)

// printer writes tables to out and notes to err
type printer struct {
	out  io.Writer
	err  io.Writer
	warn *color.Color
	bold *color.Color
}

func newPrinter(out, err io.Writer, noColor bool) *printer {
	p := &printer{
		out:  out,
		err:  err,
		warn: color.New(color.FgRed),
		bold: color.New(color.Bold),
	}
	if noColor {
		p.warn.DisableColor()
		p.bold.DisableColor()
	}
	return p
}

// table renders rows under header with the borderless left aligned layout
func (p *printer) table(header []string, rows [][]string) error {
	t := tablewriter.NewTable(p.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.Off},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
	t.Header(header)
	if err := t.Bulk(rows); err != nil {
		return err
	}
	return t.Render()
}

// field prints a bold "name: value" line
func (p *printer) field(name, value string) {
	p.bold.Fprintf(p.out, "%s:", name)
	fmt.Fprintf(p.out, " %s\n", value)
}

// notFound prints one red note per missing word
func (p *printer) notFound(words []string) {
	for _, w := range words {
		p.warn.Fprintln(p.err, chart.NotFoundText(w))
	}
}
