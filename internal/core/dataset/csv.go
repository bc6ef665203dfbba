package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"wordtrends/internal/core/series"
	perr "wordtrends/internal/platform/errors"
)

// Source CSV layout, one header row per column level:
//
//	year,2020,2020,...
//	month,1,1,...             (monthly only)
//	subreddit,Conservative,Liberal,...
//	word,,,...                (optional index name row)
//	cat,5,7,...
//
// the first cell of a header row is the level name and is ignored

// ParseMonthly reads a table with (year, month, category) column headers
func ParseMonthly(r io.Reader) (*series.Table[series.Month], error) {
	return parseTable(r, Monthly.Depth(), series.Shape[series.Month](series.MonthShape{}), monthBucket)
}

// ParseYearly reads a table with (year, category) column headers
func ParseYearly(r io.Reader) (*series.Table[series.Year], error) {
	return parseTable(r, Yearly.Depth(), series.Shape[series.Year](series.YearShape{}), yearBucket)
}

// parseFrame dispatches on granularity
func parseFrame(g Granularity, r io.Reader) (series.Frame, error) {
	switch g {
	case Monthly:
		return ParseMonthly(r)
	case Yearly:
		return ParseYearly(r)
	}
	return nil, perr.InvalidArgf("unknown granularity %q", g)
}

// levels excludes the category level, which is always last
func monthBucket(levels []string) (series.Month, error) {
	y, err := headerInt(levels[0])
	if err != nil {
		return series.Month{}, perr.Sourcef("csv: year %q is not an integer", levels[0])
	}
	m, err := headerInt(levels[1])
	if err != nil || m < 1 || m > 12 {
		return series.Month{}, perr.Sourcef("csv: month %q is not in 1..12", levels[1])
	}
	return series.Month{Year: y, Month: m}, nil
}

func yearBucket(levels []string) (series.Year, error) {
	y, err := headerInt(levels[0])
	if err != nil {
		return 0, perr.Sourcef("csv: year %q is not an integer", levels[0])
	}
	return series.Year(y), nil
}

// headerInt accepts "2020" and the float spelling "2020.0"
func headerInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return int(f), nil
}

// cell parses an observation; empty and NaN cells are absent
func cell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

func parseTable[B comparable](r io.Reader, depth int, shape series.Shape[B], bucket func([]string) (B, error)) (*series.Table[B], error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = false
	cr.TrimLeadingSpace = true

	read := func() ([]string, error) {
		rec, err := cr.Read()
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, perr.Wrap(err, perr.ErrorCodeSource, "csv: malformed")
		}
		return rec, err
	}

	headers := make([][]string, 0, depth)
	for len(headers) < depth {
		rec, err := read()
		if errors.Is(err, io.EOF) {
			return nil, perr.Sourcef("csv: want %d header rows, got %d", depth, len(headers))
		}
		if err != nil {
			return nil, err
		}
		headers = append(headers, rec)
	}
	width := len(headers[0])
	if width < 2 {
		return nil, perr.Sourcef("csv: header has no data columns")
	}

	cols := make([]series.Column[B], 0, width-1)
	levels := make([]string, depth-1)
	for j := 1; j < width; j++ {
		for k := 0; k < depth-1; k++ {
			levels[k] = headers[k][j]
		}
		b, err := bucket(levels)
		if err != nil {
			return nil, perr.WithField(err, "column "+strconv.Itoa(j))
		}
		cat := strings.TrimSpace(headers[depth-1][j])
		if cat == "" {
			return nil, perr.WithField(perr.Sourcef("csv: empty category in column %d", j), "column "+strconv.Itoa(j))
		}
		cols = append(cols, series.Column[B]{Bucket: b, Category: cat})
	}

	var (
		words []string
		cells [][]float64
		first = true
	)
	for {
		rec, err := read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if indexNameRow(rec) {
				continue
			}
		}

		word := norm.NFC.String(strings.TrimSpace(rec[0]))
		if word == "" {
			return nil, perr.Sourcef("csv: line %d has an empty word", line)
		}
		row := make([]float64, width-1)
		for j := 1; j < width; j++ {
			v, err := cell(rec[j])
			if err != nil {
				return nil, perr.Sourcef("csv: line %d column %d: bad value %q", line, j, rec[j])
			}
			row[j-1] = v
		}
		words = append(words, word)
		cells = append(cells, row)
	}

	t, err := series.NewTable(shape, cols, words, cells)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeSource, "csv: invalid table")
	}
	return t, nil
}

// indexNameRow reports a pandas index name row: a label then nothing
func indexNameRow(rec []string) bool {
	for _, c := range rec[1:] {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
