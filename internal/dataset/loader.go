package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"

	"github.com/ale-ignas/linkboard/internal/client"
	"github.com/ale-ignas/linkboard/internal/models"
	"github.com/ale-ignas/linkboard/internal/utils"
)

// DefaultSource is the dataset location used when none is configured
const DefaultSource = "data/content.json"

// Loader reads the entry dataset from a local file or an HTTP endpoint
type Loader struct {
	httpClient *http.Client
	progress   io.Writer
	debug      bool
}

// NewLoader creates a Loader using the given HTTP client.
// A nil client gets the default one.
func NewLoader(httpClient *http.Client) *Loader {
	if httpClient == nil {
		httpClient = client.CreateHTTPClient("", false)
	}
	return &Loader{httpClient: httpClient}
}

// WithProgress shows a download progress bar on w for remote sources
func (l *Loader) WithProgress(w io.Writer) *Loader {
	l.progress = w
	return l
}

// WithDebug enables debug output
func (l *Loader) WithDebug(debug bool) *Loader {
	l.debug = debug
	return l
}

// Load returns the dataset at source. Any failure is logged and replaced by
// a single placeholder entry, so callers always get something to render.
func (l *Loader) Load(ctx context.Context, source string) []models.Entry {
	entries, err := l.Fetch(ctx, source)
	if err != nil {
		log.Printf("Warning: could not load %s, using placeholder entry: %v", source, err)
		return []models.Entry{models.PlaceholderEntry()}
	}
	return entries
}

// Fetch reads and parses the dataset at source
func (l *Loader) Fetch(ctx context.Context, source string) ([]models.Entry, error) {
	if source == "" {
		source = DefaultSource
	}

	var (
		data []byte
		err  error
	)
	if utils.IsRemoteSource(source) {
		data, err = l.fetchRemote(ctx, source)
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("failed to read %s: %w", source, err)
		}
	}
	if err != nil {
		return nil, err
	}

	if l.debug {
		log.Printf("Debug: loaded %s from %s", humanize.Bytes(uint64(len(data))), source)
	}

	return Parse(data)
}

// Parse decodes a JSON array of entries
func Parse(data []byte) ([]models.Entry, error) {
	var entries []models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	return entries, nil
}

func (l *Loader) fetchRemote(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header = client.NoCacheHeaders()

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("received non-success status code: %d", resp.StatusCode)
	}

	if l.progress == nil {
		return client.ReadResponseBody(resp)
	}

	bar := pb.New64(resp.ContentLength)
	bar.SetTemplate(pb.Full)
	bar.SetWriter(l.progress)
	bar.Set(pb.Bytes, true)
	bar.Start()
	defer bar.Finish()

	return client.ReadBody(bar.NewProxyReader(resp.Body), resp.Header.Get("Content-Encoding"))
}
