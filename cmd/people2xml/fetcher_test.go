package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestFetcher_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("P|Anna|Karlsson\n"), 0o644))

	rc, err := newFetcher().open(path)
	require.NoError(t, err)
	assert.Equal(t, "P|Anna|Karlsson\n", readAll(t, rc))
}

func TestFetcher_MissingFile(t *testing.T) {
	_, err := newFetcher().open(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "opening input")
}

func TestFetcher_Stdin(t *testing.T) {
	f := newFetcher()
	f.stdin = strings.NewReader("P|Carl|Svensson\n")

	rc, err := f.open("-")
	require.NoError(t, err)
	assert.Equal(t, "P|Carl|Svensson\n", readAll(t, rc))
}

func TestFetcher_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/people.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, "P|Anna|Karlsson\n")
	}))
	defer srv.Close()

	rc, err := newFetcher().open(srv.URL + "/people.txt")
	require.NoError(t, err)
	assert.Equal(t, "P|Anna|Karlsson\n", readAll(t, rc))

	_, err = newFetcher().open(srv.URL + "/missing.txt")
	assert.ErrorContains(t, err, "HTTP 404")
}
