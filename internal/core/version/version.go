// Package version reports the build of the running binary
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// set with -ldflags "-X 'wordtrends/internal/core/version.version=v0.1.0'
// -X 'wordtrends/internal/core/version.commit=abcd' -X 'wordtrends/internal/core/version.date=2026-01-02'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information of the api binary
func Info() BuildInfo { return InfoFor("wordtrends-api") }

// InfoFor returns the build information under another service name
func InfoFor(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
