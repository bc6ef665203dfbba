package series

import (
	"slices"

	perr "wordtrends/internal/platform/errors"
)

// Column is the composite column key of a table
type Column[B comparable] struct {
	Bucket   B
	Category string
}

// Table is an immutable word x (bucket, category) grid of observations
// absent cells are stored as NaN and never leak out of the package as values
type Table[B comparable] struct {
	shape Shape[B]

	words  []string
	rowIdx map[string]int

	cols   []Column[B]
	colIdx map[Column[B]]int

	// cells is row major, len(words) * len(cols)
	cells []float64

	axis   []B
	labels []string
}

// NewTable validates and freezes a table
// cells[i] holds the row for words[i] and must have one value per column; use NaN for an empty cell
func NewTable[B comparable](shape Shape[B], cols []Column[B], words []string, cells [][]float64) (*Table[B], error) {
	if shape == nil {
		return nil, perr.InvalidArgf("table: nil shape")
	}
	if len(cells) != len(words) {
		return nil, perr.InvalidArgf("table: %d rows of cells for %d words", len(cells), len(words))
	}

	t := &Table[B]{
		shape:  shape,
		words:  slices.Clone(words),
		rowIdx: make(map[string]int, len(words)),
		cols:   slices.Clone(cols),
		colIdx: make(map[Column[B]]int, len(cols)),
		cells:  make([]float64, 0, len(words)*len(cols)),
	}

	for i, c := range t.cols {
		if _, dup := t.colIdx[c]; dup {
			return nil, perr.InvalidArgf("table: duplicate column %s/%s", shape.Label(c.Bucket), c.Category)
		}
		t.colIdx[c] = i
	}
	for i, w := range t.words {
		if _, dup := t.rowIdx[w]; dup {
			return nil, perr.InvalidArgf("table: duplicate row %q", w)
		}
		if len(cells[i]) != len(cols) {
			return nil, perr.InvalidArgf("table: row %q has %d cells, want %d", w, len(cells[i]), len(cols))
		}
		t.rowIdx[w] = i
		t.cells = append(t.cells, cells[i]...)
	}

	t.axis = canonicalAxis(shape, t.cols)
	t.labels = make([]string, len(t.axis))
	for i, b := range t.axis {
		t.labels[i] = shape.Label(b)
	}
	return t, nil
}

// canonicalAxis collects the distinct buckets of all columns in ascending order
func canonicalAxis[B comparable](shape Shape[B], cols []Column[B]) []B {
	seen := make(map[B]struct{}, len(cols))
	axis := make([]B, 0, len(cols))
	for _, c := range cols {
		if _, ok := seen[c.Bucket]; ok {
			continue
		}
		seen[c.Bucket] = struct{}{}
		axis = append(axis, c.Bucket)
	}
	slices.SortFunc(axis, shape.Compare)
	return axis
}

// Axis returns the canonical bucket axis
func (t *Table[B]) Axis() []B { return slices.Clone(t.axis) }

// Labels returns the display labels of the canonical axis
func (t *Table[B]) Labels() []string { return slices.Clone(t.labels) }

// Has reports whether word is a row key
func (t *Table[B]) Has(word string) bool {
	_, ok := t.rowIdx[word]
	return ok
}

// Lookup returns the observation at (word, bucket, category)
// ok is false when the row or column does not exist; an empty cell is present and NaN
func (t *Table[B]) Lookup(word string, bucket B, category string) (float64, bool) {
	r, ok := t.rowIdx[word]
	if !ok {
		return 0, false
	}
	return t.lookupRow(r, bucket, category)
}

func (t *Table[B]) lookupRow(r int, bucket B, category string) (float64, bool) {
	c, ok := t.colIdx[Column[B]{Bucket: bucket, Category: category}]
	if !ok {
		return 0, false
	}
	return t.cells[r*len(t.cols)+c], true
}

// Words returns the number of rows
func (t *Table[B]) Words() int { return len(t.words) }

// Columns returns the number of (bucket, category) columns
func (t *Table[B]) Columns() int { return len(t.cols) }

// Categories returns the distinct categories in first-seen column order
func (t *Table[B]) Categories() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, c := range t.cols {
		if _, ok := seen[c.Category]; ok {
			continue
		}
		seen[c.Category] = struct{}{}
		out = append(out, c.Category)
	}
	return out
}

// Extract runs the extractor against this table
func (t *Table[B]) Extract(req Request, policy MissingPolicy) Result {
	return Extract(t, req, policy)
}

// Frame is the bucket-agnostic view of a table
// *Table[Month] and *Table[Year] both satisfy it so callers can hold either
type Frame interface {
	Extract(req Request, policy MissingPolicy) Result
	Labels() []string
	Categories() []string
	Has(word string) bool
	Words() int
	Columns() int
}

var (
	_ Frame = (*Table[Month])(nil)
	_ Frame = (*Table[Year])(nil)
)
