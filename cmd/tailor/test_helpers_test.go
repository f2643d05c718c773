package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeClipboard records what was copied.
type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

// envMap returns a getenv func over a fixed map.
func envMap(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

func newTestApp(env map[string]string) (*app, *fakeClipboard) {
	cb := &fakeClipboard{}
	return &app{getenv: envMap(env), clipboard: cb}, cb
}

// execute runs the CLI in-process and captures its output.
func execute(t *testing.T, a *app, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := newRootCmdWith(a)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

type stubBackend struct {
	*httptest.Server
	hits     atomic.Int32
	lastBody atomic.Value
}

func newStubBackend(t *testing.T, status int, body string) *stubBackend {
	t.Helper()
	b := &stubBackend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.hits.Add(1)
		raw, _ := io.ReadAll(r.Body)
		b.lastBody.Store(string(raw))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body)) //nolint:errcheck
	}))
	t.Cleanup(b.Close)
	return b
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// newHTMLServer serves a fixed job posting page.
func newHTMLServer(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}
