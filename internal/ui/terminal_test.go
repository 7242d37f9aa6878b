package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"

	"github.com/ale-ignas/linkboard/internal/models"
	"github.com/ale-ignas/linkboard/internal/presenter"
)

func init() {
	pterm.DisableStyling()
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
}

func TestTerminalCards(t *testing.T) {
	entries := []models.Entry{
		{ID: "1", Date: "2025-01-01", Title: "Old", Category: "a", Status: "done"},
		{ID: "2", Date: "2025-06-01", Title: "New", Description: "fresh", Resource: "video", URL: "https://n.example"},
	}
	term := &Terminal{Now: fixedNow}
	p := presenter.New(entries, presenter.DefaultOptions(), term)

	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	if strings.Index(out, "New") > strings.Index(out, "Old") {
		t.Fatalf("expected newest entry first:\n%s", out)
	}
	for _, want := range []string{"URL: https://n.example", "fresh", "Resource: video", "3 days ago", "Total entries: 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalTable(t *testing.T) {
	entries := []models.Entry{{ID: "1", Date: "2025-06-01", Title: "Row", Category: "go"}}
	p := presenter.New(entries, presenter.DefaultOptions(), &Terminal{Table: true, Now: fixedNow})

	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Title", "Row", "go", "Showing 1 entries"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalEmpty(t *testing.T) {
	p := presenter.New(nil, presenter.DefaultOptions(), &Terminal{})

	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "Nerasta įrašų") {
		t.Fatalf("expected no-entries message, got %q", buf.String())
	}
}

func TestFormatURL(t *testing.T) {
	if got := FormatURL("https://x", "X", false); got != "X" {
		t.Fatalf("plain = %q", got)
	}
	if got := FormatURL("https://x", "X", true); !strings.Contains(got, "https://x") || !strings.HasPrefix(got, "\033]8;;") {
		t.Fatalf("hyperlink = %q", got)
	}
}

func TestPrintDomains(t *testing.T) {
	var buf bytes.Buffer
	PrintDomains(&buf, presenter.Domains{Categories: []string{"go"}, Resources: []string{"video"}}, presenter.DefaultLabels())
	out := buf.String()
	if !strings.Contains(out, "  go\n") || !strings.Contains(out, "  video\n") || !strings.Contains(out, "all (Visos)") {
		t.Fatalf("unexpected domains output:\n%s", out)
	}
}

func TestPrintBannerSilenced(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, true)
	if buf.Len() != 0 {
		t.Fatal("silenced banner should print nothing")
	}
}
