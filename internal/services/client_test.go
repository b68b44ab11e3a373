package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"golang.org/x/time/rate"

	"github.com/desertthunder/infosys/internal/shared"
	tu "github.com/desertthunder/infosys/internal/testing"
)

func newTestClient(baseURL string, opts ...ClientOption) *Client {
	cfg := shared.HatchetConfig{BaseURL: baseURL, TimeoutSeconds: 5}
	return NewClient(cfg, opts...)
}

func TestClient(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("Defaults", func(t *testing.T) {
			c := NewClient(shared.HatchetConfig{})
			if c.BaseURL() != DefaultBaseURL {
				t.Errorf("expected default base URL, got %s", c.BaseURL())
			}
			if c.limiter != nil {
				t.Error("expected no limiter when rate_limit is zero")
			}
		})

		t.Run("With Rate Limit", func(t *testing.T) {
			c := NewClient(shared.HatchetConfig{RateLimit: 2, Burst: 0})
			if c.limiter == nil || c.limiter.Burst() != 1 {
				t.Errorf("expected limiter with burst 1, got %+v", c.limiter)
			}
		})

		t.Run("With Custom Limiter", func(t *testing.T) {
			l := rate.NewLimiter(rate.Inf, 1)
			c := NewClient(shared.HatchetConfig{RateLimit: 2}, WithLimiter(l))
			if c.limiter != l {
				t.Error("expected custom limiter to replace the configured one")
			}
		})

		t.Run("With Custom Client", func(t *testing.T) {
			hc := &http.Client{}
			c := newTestClient("http://example.com", WithHTTPClient(hc))
			if c.httpClient != hc {
				t.Error("expected custom client to be used")
			}
		})
	})

	t.Run("Get", func(t *testing.T) {
		t.Run("Successful Request", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET method, got %s", r.Method)
				}
				if r.URL.RequestURI() != "/v1/artists/?name=Boards+of+Canada" {
					t.Errorf("unexpected request URI %s", r.URL.RequestURI())
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"artists":[]}`))
			}))
			defer server.Close()

			c := newTestClient(server.URL)
			url, _ := BuildQuery(c.BaseURL(), KindArtists, NewParams(ParamName, "Boards of Canada"))
			body, err := c.Get(context.Background(), url)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if string(body) != `{"artists":[]}` {
				t.Errorf("unexpected body %s", body)
			}
		})

		t.Run("Error Status", func(t *testing.T) {
			tests := []struct {
				name   string
				status int
			}{
				{"not found", http.StatusNotFound},
				{"server error", http.StatusInternalServerError},
			}
			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
						w.WriteHeader(tt.status)
					}))
					defer server.Close()

					_, err := newTestClient(server.URL).Get(context.Background(), server.URL+"/v1/users/")
					if !errors.Is(err, shared.ErrTransport) || !errors.Is(err, shared.ErrAPIRequest) {
						t.Errorf("expected transport API error, got %v", err)
					}
				})
			}
		})

		t.Run("Failed HTTP Request", func(t *testing.T) {
			rt := tu.NewMockRoundTripper(nil, errors.New("connection failed"))
			hc := &http.Client{Transport: rt}
			_, err := newTestClient("http://example.com", WithHTTPClient(hc)).Get(context.Background(), "http://example.com/v1/users/")
			if !errors.Is(err, shared.ErrTransport) {
				t.Errorf("expected ErrTransport, got %v", err)
			}
			if rt.Calls() != 1 {
				t.Errorf("expected a single attempt, got %d", rt.Calls())
			}
		})

		t.Run("Failed Response Body Read", func(t *testing.T) {
			hc := &http.Client{Transport: tu.NewMockRoundTripper(&http.Response{
				StatusCode: http.StatusOK,
				Body:       tu.FailingBody{},
				Header:     http.Header{},
			}, nil)}
			_, err := newTestClient("http://example.com", WithHTTPClient(hc)).Get(context.Background(), "http://example.com/v1/users/")
			if err == nil || !strings.Contains(err.Error(), "failed to read response") {
				t.Errorf("expected read failure, got %v", err)
			}
		})

		t.Run("Failed Request Creation", func(t *testing.T) {
			_, err := newTestClient("http://example.com").Get(context.Background(), "http://example.com/\x00invalid")
			if err == nil || !strings.Contains(err.Error(), "failed to create request") {
				t.Errorf("expected request creation failure, got %v", err)
			}
		})

		t.Run("With Canceled Context", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			defer server.Close()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			if _, err := newTestClient(server.URL).Get(ctx, server.URL); err == nil {
				t.Error("expected error for canceled context")
			}
		})
	})

	t.Run("Post", func(t *testing.T) {
		t.Run("Sends Body And Headers", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST method, got %s", r.Method)
				}
				if r.Header.Get("Content-Type") != "application/json" {
					t.Errorf("expected JSON content type, got %s", r.Header.Get("Content-Type"))
				}
				if r.Header.Get("Authorization") != "tok" {
					t.Errorf("expected authorization header, got %q", r.Header.Get("Authorization"))
				}
				body, _ := io.ReadAll(r.Body)
				if string(body) != `{"track":"T1"}` {
					t.Errorf("unexpected body %s", body)
				}
				w.WriteHeader(http.StatusCreated)
			}))
			defer server.Close()

			header := http.Header{}
			header.Set("Authorization", "tok")
			_, err := newTestClient(server.URL).Post(context.Background(), server.URL+"/v1/socialActions/", header, []byte(`{"track":"T1"}`))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	})

	t.Run("Circuit Breaker", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		var err error
		for range 15 {
			_, err = c.Get(context.Background(), server.URL)
		}
		if !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected open circuit, got %v", err)
		}
		if n := calls.Load(); n != 10 {
			t.Errorf("expected breaker to stop calls after 10 failures, got %d", n)
		}
	})

	t.Run("Client Errors Do Not Trip Breaker", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		var err error
		for range 15 {
			_, err = c.Get(context.Background(), server.URL)
		}
		if errors.Is(err, shared.ErrServiceUnavailable) {
			t.Error("expected 4xx responses to keep the circuit closed")
		}
	})
}

func TestClient_Cassette(t *testing.T) {
	r := tu.NewVCRRecorder(t, "artists_by_name")
	c := newTestClient(DefaultBaseURL, WithHTTPClient(tu.VCRHTTPClient(r)))

	url, err := BuildQuery(c.BaseURL(), KindArtists, NewParams(ParamName, "Boards of Canada"))
	if err != nil {
		t.Fatal(err)
	}
	body, err := c.Get(context.Background(), url)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	artists, err := Decode[Artists](body)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(artists.Artists) == 0 || artists.Artists[0].ID != "A1" {
		t.Fatalf("unexpected artists %+v", artists.Artists)
	}
	if img := ImageIndex(artists.Images).First(artists.Artists[0].Images); img == nil || img.ID != "I1" {
		t.Errorf("expected first image I1, got %+v", img)
	}
}
