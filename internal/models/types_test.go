package models

import "testing"

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Status
	}{
		{"done", StatusDone},
		{"DONE", StatusDone},
		{"Ready", StatusDone},
		{"paruosta", StatusDone},
		{"inprogress", StatusInProgress},
		{"InProgress", StatusInProgress},
		{"started", StatusInProgress},
		{"PRADETA", StatusInProgress},
		{"", StatusNotStarted},
		{"notstarted", StatusNotStarted},
		{"in-progress", StatusNotStarted},
		{"whatever", StatusNotStarted},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			if got := ParseStatus(tt.raw); got != tt.want {
				t.Fatalf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStatusClasses(t *testing.T) {
	t.Parallel()

	if got := StatusDone.Class(); got != "done" {
		t.Fatalf("done class = %q", got)
	}
	if got := StatusInProgress.Class(); got != "inprogress" {
		t.Fatalf("in-progress class = %q", got)
	}
	if got := StatusNotStarted.Class(); got != "notstarted" {
		t.Fatalf("not-started class = %q", got)
	}
	if got := StatusInProgress.Icon(); got != "fa-solid fa-circle-exclamation" {
		t.Fatalf("in-progress icon = %q", got)
	}
}

func TestParseSortDirection(t *testing.T) {
	t.Parallel()

	if d, ok := ParseSortDirection(" ASC "); !ok || d != SortAsc {
		t.Fatalf("expected asc, got %q %v", d, ok)
	}
	if d, ok := ParseSortDirection("desc"); !ok || d != SortDesc {
		t.Fatalf("expected desc, got %q %v", d, ok)
	}
	if _, ok := ParseSortDirection("sideways"); ok {
		t.Fatal("expected unknown direction to be rejected")
	}
	if SortAsc.Opposite() != SortDesc || SortDesc.Opposite() != SortAsc {
		t.Fatal("Opposite should flip direction")
	}
}

func TestPlaceholderEntry(t *testing.T) {
	t.Parallel()

	p := PlaceholderEntry()
	if p.Title != "Įvyko klaida" {
		t.Fatalf("placeholder title = %q", p.Title)
	}
	if p.EntryStatus() != StatusNotStarted {
		t.Fatalf("placeholder status = %q", p.EntryStatus())
	}
}
