package utils

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
)

// ParseDate parses an entry date in UTC. Date-only values such as
// "2025-01-01" are midnight UTC.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateValue returns the sort key of an entry date in milliseconds since the
// Unix epoch. Missing or unparseable dates are 0.
func DateValue(raw string) int64 {
	t, ok := ParseDate(raw)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

// DistinctSorted returns the distinct non-empty values in ascending byte order
func DistinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// IsRemoteSource reports whether a dataset source should be fetched over HTTP
func IsRemoteSource(source string) bool {
	s := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// TruncateString truncates a string to length runes and adds "..." if necessary
func TruncateString(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	if length <= 3 {
		return string([]rune(s)[:length])
	}
	return string([]rune(s)[:length-3]) + "..."
}
