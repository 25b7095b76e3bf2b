package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// fetcher opens record input from a URL, a local file or stdin.
// This is CLI-specific logic and is not part of the core library.
type fetcher struct {
	httpClient *http.Client
	stdin      io.Reader
}

// newFetcher creates a new fetcher for record input
func newFetcher() *fetcher {
	return &fetcher{
		httpClient: &http.Client{},
		stdin:      os.Stdin,
	}
}

// open returns a stream for urlOrPath. "-" reads stdin, http(s) URLs are
// fetched, anything else is a local path. The caller closes the stream.
func (f *fetcher) open(urlOrPath string) (io.ReadCloser, error) {
	if urlOrPath == "-" {
		return io.NopCloser(f.stdin), nil
	}

	// Check if it's a local file path
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		file, err := os.Open(urlOrPath)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		return file, nil
	}

	// HTTP fetch
	resp, err := f.httpClient.Get(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}
	return resp.Body, nil
}
