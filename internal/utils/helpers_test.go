package utils

import (
	"reflect"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, ok := ParseDate("2025-06-01")
	if !ok {
		t.Fatal("expected ISO date to parse")
	}
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDate = %v, want %v", got, want)
	}

	got, ok = ParseDate("2025-06-01T10:30:00Z")
	if !ok || got.Hour() != 10 || got.Minute() != 30 {
		t.Fatalf("ParseDate with time = %v %v", got, ok)
	}
}

func TestDateValueInvalid(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "garbage"} {
		if got := DateValue(raw); got != 0 {
			t.Fatalf("DateValue(%q) = %d, want 0", raw, got)
		}
	}
	if DateValue("2025-01-01") <= 0 {
		t.Fatal("expected positive value for a valid date")
	}
	if DateValue("2025-01-01") >= DateValue("2025-06-01") {
		t.Fatal("expected dates to order chronologically")
	}
}

func TestDistinctSorted(t *testing.T) {
	t.Parallel()

	got := DistinctSorted([]string{"video", "", "article", "video", "Book"})
	want := []string{"Book", "article", "video"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DistinctSorted = %v, want %v", got, want)
	}
	if got := DistinctSorted(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestIsRemoteSource(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"https://example.com/data/content.json": true,
		"HTTP://example.com/x.json":             true,
		"data/content.json":                     false,
		"/srv/content.json":                     false,
	}
	for in, want := range tests {
		if got := IsRemoteSource(in); got != want {
			t.Fatalf("IsRemoteSource(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	if got := TruncateString("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := TruncateString("Įvyko klaida", 8); got != "Įvyko..." {
		t.Fatalf("got %q", got)
	}
}
