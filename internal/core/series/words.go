package series

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ParseWords splits free text on commas, trims each piece and drops empties
// order is preserved and duplicates are kept
// words are NFC normalized to match the row keys the loader writes, so labels
// and not found lists show the normalized spelling rather than the raw input
func ParseWords(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		w := norm.NFC.String(strings.TrimSpace(p))
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

// StringList is a category selection as it arrives on the wire
// a lone string becomes a one element list; null stays nil and [] stays empty
type StringList []string

// UnmarshalJSON accepts "a" as well as ["a","b"]
func (l *StringList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = nil
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*l = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}
