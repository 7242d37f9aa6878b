package dataset

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ale-ignas/linkboard/internal/models"
)

const sample = `[
  {"id":"1","date":"2025-01-01","title":"First","category":"a","status":"done","resource":"video"},
  {"id":"2","date":"2025-06-01","title":"Second","category":"b"}
]`

func TestFetchRemoteBypassesCache(t *testing.T) {
	t.Parallel()

	headers := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sample))
	}))
	defer srv.Close()

	entries, err := NewLoader(srv.Client()).Fetch(context.Background(), srv.URL+"/data/content.json")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(entries) != 2 || entries[1].Title != "Second" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	h := <-headers
	if h.Get("Cache-Control") == "" || h.Get("Pragma") != "no-cache" {
		t.Fatalf("cache bypass headers missing: Cache-Control=%q Pragma=%q", h.Get("Cache-Control"), h.Get("Pragma"))
	}
}

func TestFetchRemoteWithProgress(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sample))
	}))
	defer srv.Close()

	var progress bytes.Buffer
	entries, err := NewLoader(srv.Client()).WithProgress(&progress).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
}

func TestLoadFallsBackOnFailure(t *testing.T) {
	t.Parallel()

	notFound := httptest.NewServer(http.NotFoundHandler())
	defer notFound.Close()

	badJSON := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer badJSON.Close()

	tests := []struct {
		name   string
		source string
		client *http.Client
	}{
		{name: "http status", source: notFound.URL, client: notFound.Client()},
		{name: "parse error", source: badJSON.URL, client: badJSON.Client()},
		{name: "missing file", source: filepath.Join(t.TempDir(), "missing.json")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			entries := NewLoader(tt.client).Load(context.Background(), tt.source)
			if len(entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(entries))
			}
			if entries[0] != models.PlaceholderEntry() {
				t.Fatalf("expected placeholder, got %+v", entries[0])
			}
		})
	}
}

func TestFetchLocalFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := NewLoader(nil).Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if entries[0].Resource != "video" || entries[1].Resource != "" {
		t.Fatalf("optional fields not tolerated: %+v", entries)
	}
}

func TestParseNullIsEmpty(t *testing.T) {
	t.Parallel()

	entries, err := Parse([]byte("null"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", entries)
	}
}

func TestParseRejectsWrongFieldType(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte(`[{"id":1}]`)); err == nil {
		t.Fatal("expected error for numeric id")
	}
}
