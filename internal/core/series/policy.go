package series

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	perr "wordtrends/internal/platform/errors"
)

// MissingPolicy decides what stands in for an observation the table does not hold
type MissingPolicy interface {
	Name() string
	Fill() float64
}

type zeroFill struct{}

func (zeroFill) Name() string  { return "zero" }
func (zeroFill) Fill() float64 { return 0 }

type markAbsent struct{}

func (markAbsent) Name() string  { return "absent" }
func (markAbsent) Fill() float64 { return math.NaN() }

var (
	// ZeroFill reports missing observations as 0
	// this conflates "no occurrences" with "no data" and is the default
	ZeroFill MissingPolicy = zeroFill{}

	// MarkAbsent reports missing observations as absent (JSON null, not drawn)
	MarkAbsent MissingPolicy = markAbsent{}
)

// PolicyNames lists the accepted policy names
func PolicyNames() []string { return []string{ZeroFill.Name(), MarkAbsent.Name()} }

// PolicyByName resolves a policy from its name, empty means ZeroFill
func PolicyByName(name string) (MissingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "zero":
		return ZeroFill, nil
	case "absent":
		return MarkAbsent, nil
	default:
		return nil, perr.InvalidArgf("unknown missing-value policy %q", name)
	}
}

// Values is a series of observations where NaN marks an absent value
type Values []float64

// IsAbsent reports whether the value at i is absent
func (v Values) IsAbsent(i int) bool { return math.IsNaN(v[i]) }

// MarshalJSON writes absent values as null
func (v Values) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("[]"), nil
	}
	var b bytes.Buffer
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		switch {
		case math.IsNaN(x):
			b.WriteString("null")
		case math.IsInf(x, 0):
			return nil, perr.Internalf("series: infinite value at %d", i)
		default:
			b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		}
	}
	b.WriteByte(']')
	return b.Bytes(), nil
}
