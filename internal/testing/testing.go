// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"testing"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter passes the first n writes through to its target and fails afterwards.
type LimitedWriter struct {
	remaining int
	target    io.Writer
}

func NewLimitedWriter(n int, target io.Writer) *LimitedWriter {
	return &LimitedWriter{remaining: n, target: target}
}

func (l *LimitedWriter) Write(p []byte) (int, error) {
	if l.remaining <= 0 {
		return 0, errors.New("write limit exceeded")
	}
	l.remaining--
	return l.target.Write(p)
}

// MockRoundTripper answers every request with a fixed response or error and counts the calls.
type MockRoundTripper struct {
	response *http.Response
	err      error
	calls    atomic.Int32
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	m.calls.Add(1)
	return m.response, m.err
}

// Calls reports how many requests reached the round tripper.
func (m *MockRoundTripper) Calls() int { return int(m.calls.Load()) }

// FailingBody is a response body whose reads always fail.
type FailingBody struct{}

func (FailingBody) Read([]byte) (int, error) { return 0, errors.New("read failed") }
func (FailingBody) Close() error             { return nil }

// ChdirTemp switches the working directory to a fresh temp dir for the rest of the test
// and returns its path.
func ChdirTemp(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})
	return dir
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
