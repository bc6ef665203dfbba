package dataset

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"wordtrends/internal/core/metric"
	perr "wordtrends/internal/platform/errors"
)

// MetricSources names one source per metric; each is an http(s) URL or a file path
type MetricSources struct {
	Freq string `yaml:"freq" json:"freq"`
	Prop string `yaml:"prop" json:"prop"`
	Rank string `yaml:"rank" json:"rank"`
}

// For returns the source of m
func (s MetricSources) For(m metric.Metric) string {
	switch m {
	case metric.Frequency:
		return s.Freq
	case metric.Proportion:
		return s.Prop
	case metric.Rank:
		return s.Rank
	}
	return ""
}

// Sources groups sources by granularity; a nil group is not loaded
type Sources struct {
	Monthly *MetricSources `yaml:"monthly,omitempty" json:"monthly,omitempty"`
	Yearly  *MetricSources `yaml:"yearly,omitempty" json:"yearly,omitempty"`
}

// For returns the group of g or nil
func (s Sources) For(g Granularity) *MetricSources {
	switch g {
	case Monthly:
		return s.Monthly
	case Yearly:
		return s.Yearly
	}
	return nil
}

// Manifest describes where a dataset comes from and which categories it exposes
type Manifest struct {
	Categories      []string `yaml:"categories" json:"categories"`
	DefaultCategory string   `yaml:"default_category" json:"default_category"`
	Sources         Sources  `yaml:"sources" json:"sources"`

	// relative file sources resolve against baseDir
	baseDir string
}

const defaultBase = "https://laimabaldina.com/nounplots/public/"

// DefaultManifest is the published noun dataset: five subreddits, both granularities
func DefaultManifest() Manifest {
	return Manifest{
		Categories:      []string{"Conservative", "Liberal", "Republican", "democrats", "politics"},
		DefaultCategory: "Conservative",
		Sources: Sources{
			Monthly: &MetricSources{
				Freq: defaultBase + "freqnouns.csv",
				Prop: defaultBase + "propnouns.csv",
				Rank: defaultBase + "ranknouns.csv",
			},
			Yearly: &MetricSources{
				Freq: defaultBase + "freqnouns-yr.csv",
				Prop: defaultBase + "propnouns-yr.csv",
				Rank: defaultBase + "ranknouns_yr.csv",
			},
		},
	}
}

// MonthlyOnly returns a copy of m without yearly sources
func (m Manifest) MonthlyOnly() Manifest {
	m.Categories = slices.Clone(m.Categories)
	m.Sources.Yearly = nil
	return m
}

// ParseManifest decodes and validates a YAML manifest
func ParseManifest(b []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return Manifest{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "manifest: invalid yaml")
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// LoadManifest reads a YAML manifest from path
// relative file sources inside it resolve against the manifest's directory
func LoadManifest(path string) (Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, perr.Wrapf(err, perr.ErrorCodeNotFound, "manifest: read %s", path)
	}
	m, err := ParseManifest(b)
	if err != nil {
		return Manifest{}, err
	}
	m.baseDir = filepath.Dir(path)
	return m, nil
}

// Validate checks that every loaded granularity names all metrics
func (m Manifest) Validate() error {
	loaded := 0
	for _, g := range Granularities() {
		ms := m.Sources.For(g)
		if ms == nil {
			continue
		}
		loaded++
		for _, mt := range metric.All() {
			if strings.TrimSpace(ms.For(mt)) == "" {
				return perr.InvalidArgf("manifest: %s has no %s source", g, mt)
			}
		}
	}
	if loaded == 0 {
		return perr.InvalidArgf("manifest: no sources")
	}

	seen := make(map[string]struct{}, len(m.Categories))
	for _, c := range m.Categories {
		if strings.TrimSpace(c) == "" {
			return perr.InvalidArgf("manifest: empty category")
		}
		if _, dup := seen[c]; dup {
			return perr.InvalidArgf("manifest: duplicate category %q", c)
		}
		seen[c] = struct{}{}
	}
	if m.DefaultCategory != "" && len(m.Categories) > 0 {
		if _, ok := seen[m.DefaultCategory]; !ok {
			return perr.InvalidArgf("manifest: default category %q is not listed", m.DefaultCategory)
		}
	}
	return nil
}

// Granularities returns the granularities the manifest loads
func (m Manifest) Granularities() []Granularity {
	var out []Granularity
	for _, g := range Granularities() {
		if m.Sources.For(g) != nil {
			out = append(out, g)
		}
	}
	return out
}

// resolve turns a source into something the opener understands
func (m Manifest) resolve(src string) string {
	src = strings.TrimSpace(src)
	if isRemote(src) || strings.HasPrefix(src, "file://") || filepath.IsAbs(src) || m.baseDir == "" {
		return src
	}
	return filepath.Join(m.baseDir, src)
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
