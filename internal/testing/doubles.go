package testing

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/desertthunder/infosys/internal/shared"
)

// Call is a single request seen by a [RecordingTransport].
type Call struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// RecordingTransport serves canned bodies by URL and records every call.
// URLs without a canned body fail with [shared.ErrTransport].
type RecordingTransport struct {
	mu        sync.Mutex
	responses map[string][]byte
	failures  map[string]error
	calls     []Call
}

func NewRecordingTransport() *RecordingTransport {
	return &RecordingTransport{
		responses: make(map[string][]byte),
		failures:  make(map[string]error),
	}
}

// Respond registers body as the response for url.
func (r *RecordingTransport) Respond(url, body string) *RecordingTransport {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[url] = []byte(body)
	return r
}

// Fail registers err as the result for url.
func (r *RecordingTransport) Fail(url string, err error) *RecordingTransport {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[url] = err
	return r
}

func (r *RecordingTransport) Get(ctx context.Context, url string) ([]byte, error) {
	return r.serve(Call{Method: http.MethodGet, URL: url})
}

func (r *RecordingTransport) Post(ctx context.Context, url string, header http.Header, body []byte) ([]byte, error) {
	return r.serve(Call{Method: http.MethodPost, URL: url, Header: header.Clone(), Body: body})
}

func (r *RecordingTransport) serve(c Call) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
	if err, ok := r.failures[c.URL]; ok {
		return nil, err
	}
	if body, ok := r.responses[c.URL]; ok {
		return body, nil
	}
	if c.Method == http.MethodPost {
		return []byte("{}"), nil
	}
	return nil, fmt.Errorf("%w: no canned response for %s", shared.ErrTransport, c.URL)
}

// Calls returns a copy of the recorded calls.
func (r *RecordingTransport) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// URLs returns the URLs of the recorded calls in order.
func (r *RecordingTransport) URLs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	urls := make([]string, len(r.calls))
	for i, c := range r.calls {
		urls[i] = c.URL
	}
	return urls
}

// ChannelSink forwards every completed-ids report to a buffered channel.
type ChannelSink struct {
	C chan []string
}

func NewChannelSink(size int) *ChannelSink {
	return &ChannelSink{C: make(chan []string, size)}
}

func (s *ChannelSink) ReportCompleted(ids []string) {
	s.C <- ids
}

// MemoryAccountStore is an in-memory account field store.
type MemoryAccountStore struct {
	mu     sync.Mutex
	fields map[string]string
	sets   int
}

func NewMemoryAccountStore(kv ...string) *MemoryAccountStore {
	s := &MemoryAccountStore{fields: make(map[string]string)}
	for i := 0; i+1 < len(kv); i += 2 {
		s.fields[kv[i]] = kv[i+1]
	}
	return s
}

func (s *MemoryAccountStore) GetAccountField(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.fields[key]
	if !ok {
		return "", shared.ErrNotFound
	}
	return v, nil
}

func (s *MemoryAccountStore) SetAccountField(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields[key] = value
	s.sets++
	return nil
}

// Sets returns how many writes the store received.
func (s *MemoryAccountStore) Sets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

// StaticTokens hands out a fixed token. An empty token reports [shared.ErrAuthUnavailable].
type StaticTokens string

func (s StaticTokens) EnsureAccessToken(context.Context) (string, error) {
	if s == "" {
		return "", shared.ErrAuthUnavailable
	}
	return string(s), nil
}
