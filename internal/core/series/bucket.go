// Package series turns word-by-bucket tables into chart-ready series aligned
// to a canonical time axis
package series

import (
	"cmp"
	"fmt"
	"strconv"
)

// Month is a monthly time bucket
type Month struct {
	Year  int
	Month int
}

// Year is a yearly time bucket
type Year int

// Shape describes how one kind of bucket is ordered and labelled
// the extractor is written once against Shape so monthly and yearly tables share the walk
type Shape[B comparable] interface {
	// Compare orders buckets ascending, returning <0, 0 or >0
	Compare(a, b B) int
	// Label renders a bucket for display on the x axis
	Label(b B) string
}

// MonthShape orders by (year, month) and labels as YYYY-MM
type MonthShape struct{}

// Compare implements Shape
func (MonthShape) Compare(a, b Month) int {
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	return cmp.Compare(a.Month, b.Month)
}

// Label implements Shape
func (MonthShape) Label(b Month) string { return fmt.Sprintf("%04d-%02d", b.Year, b.Month) }

// YearShape orders by year and labels as YYYY
type YearShape struct{}

// Compare implements Shape
func (YearShape) Compare(a, b Year) int { return cmp.Compare(a, b) }

// Label implements Shape
func (YearShape) Label(b Year) string { return strconv.Itoa(int(b)) }
