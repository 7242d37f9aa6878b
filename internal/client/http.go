package client

import (
	"compress/gzip"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	timeout   = 30 * time.Second
	userAgent = "linkboard/1.0 (+https://github.com/ale-ignas/linkboard)"
)

// CreateHTTPClient creates an HTTP client, routed through proxyURL when it is set.
// An unparsable proxy URL is ignored.
func CreateHTTPClient(proxyURL string, insecure bool) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: insecure,
			MinVersion:         tls.VersionTLS12,
		},
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   true,
	}

	if proxyURL != "" {
		if proxy, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(proxy)
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// NoCacheHeaders returns request headers asking every cache on the way to revalidate
func NoCacheHeaders() http.Header {
	headers := http.Header{}
	headers.Set("User-Agent", userAgent)
	headers.Set("Accept", "application/json, text/plain;q=0.9, */*;q=0.8")
	headers.Set("Cache-Control", "no-cache, no-store")
	headers.Set("Pragma", "no-cache")
	return headers
}

// ReadResponseBody reads the response body, handling gzip compression if necessary
func ReadResponseBody(resp *http.Response) ([]byte, error) {
	return ReadBody(resp.Body, resp.Header.Get("Content-Encoding"))
}

// ReadBody reads r fully, decoding it first when encoding is gzip
func ReadBody(r io.Reader, encoding string) ([]byte, error) {
	switch encoding {
	case "gzip":
		reader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
		return io.ReadAll(reader)
	default:
		return io.ReadAll(r)
	}
}
