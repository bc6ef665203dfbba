// Package datasettest builds small in memory datasets for tests
package datasettest

import (
	"context"
	"testing"
	"time"

	"wordtrends/internal/core/dataset"
)

// MonthlyCSV holds cat and dog over 2020-01..2020-02 for three subreddits
// dog has no politics value in 2020-01 and nothing in news for 2020-01
const MonthlyCSV = `year,2020,2020,2020,2020,2020,2020
month,1,1,2,2,1,2
subreddit,Conservative,politics,Conservative,politics,news,news
word,,,,,,
cat,5,1,7,,2,3
dog,0,2,3,4,,1
`

// YearlyCSV holds cat and dog over 2020..2021 for two subreddits
const YearlyCSV = `year,2020.0,2020.0,2021.0,2021.0
subreddit,Conservative,politics,Conservative,politics
cat,12,1,8,3
dog,3,6,,2
`

// LoadedAt is the fixed load time of Fixture
var LoadedAt = time.Date(2024, 2, 13, 2, 32, 0, 0, time.UTC)

// Manifest returns a manifest whose sources resolve through Opener
func Manifest() dataset.Manifest {
	return dataset.Manifest{
		Categories:      []string{"Conservative", "politics", "news"},
		DefaultCategory: "Conservative",
		Sources: dataset.Sources{
			Monthly: &dataset.MetricSources{Freq: "mem://monthly/freq", Prop: "mem://monthly/prop", Rank: "mem://monthly/rank"},
			Yearly:  &dataset.MetricSources{Freq: "mem://yearly/freq", Prop: "mem://yearly/prop", Rank: "mem://yearly/rank"},
		},
	}
}

// Opener serves the fixture tables for every source of Manifest
func Opener() dataset.MemOpener {
	m, y := []byte(MonthlyCSV), []byte(YearlyCSV)
	return dataset.MemOpener{
		"mem://monthly/freq": m, "mem://monthly/prop": m, "mem://monthly/rank": m,
		"mem://yearly/freq": y, "mem://yearly/prop": y, "mem://yearly/rank": y,
	}
}

// Fixture loads Manifest through Opener and fails t on error
func Fixture(t testing.TB) *dataset.Dataset {
	t.Helper()
	d, err := dataset.Load(context.Background(), Manifest(), dataset.LoadOptions{
		Opener: Opener(),
		Now:    func() time.Time { return LoadedAt },
	})
	if err != nil {
		t.Fatalf("datasettest: load fixture: %v", err)
	}
	return d
}
