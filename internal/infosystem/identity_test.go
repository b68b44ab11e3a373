package infosystem

import (
	"context"
	"errors"
	"testing"

	"github.com/desertthunder/infosys/internal/shared"
	tu "github.com/desertthunder/infosys/internal/testing"
)

func TestIdentityCache(t *testing.T) {
	c := NewIdentityCache()
	if c.Get() != "" {
		t.Errorf("Get() = %q, want empty", c.Get())
	}
	c.Set("U1")
	c.Set("U2")
	if c.Get() != "U2" {
		t.Errorf("Get() = %q, want U2", c.Get())
	}
}

func TestEngine_ResolveIdentity(t *testing.T) {
	tests := []struct {
		name      string
		fields    []string
		cached    string
		responses map[string]string
		want      string
		wantCalls int
		wantSets  int
		wantErr   error
	}{
		{name: "cached", cached: "U1", fields: []string{AccountFieldUserID, "U9"}, want: "U1"},
		{name: "account id", fields: []string{AccountFieldUserID, "U2"}, want: "U2"},
		{name: "nothing known"},
		{
			name:      "lookup by name",
			fields:    []string{AccountFieldUserName, "me"},
			responses: map[string]string{"https://api.hatchet.is/v1/users/?name=me": `{"users":[{"id":"U3"}]}`},
			want:      "U3",
			wantCalls: 1,
			wantSets:  1,
		},
		{
			name:      "lookup finds nobody",
			fields:    []string{AccountFieldUserName, "me"},
			responses: map[string]string{"https://api.hatchet.is/v1/users/?name=me": `{"users":[]}`},
			wantCalls: 1,
		},
		{
			name:      "lookup transport failure",
			fields:    []string{AccountFieldUserName, "me"},
			wantCalls: 1,
			wantErr:   shared.ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := tu.NewMemoryAccountStore(tt.fields...)
			h := newHarness(t, func(o *Options) { o.Accounts = accounts })
			for url, body := range tt.responses {
				h.transport.Respond(url, body)
			}
			if tt.cached != "" {
				h.engine.Identity().Set(tt.cached)
			}

			got, err := h.engine.resolveIdentity(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("resolveIdentity() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveIdentity() = %q, want %q", got, tt.want)
			}
			if n := len(h.transport.Calls()); n != tt.wantCalls {
				t.Errorf("calls = %d, want %d", n, tt.wantCalls)
			}
			if tt.want != "" && h.engine.Identity().Get() != tt.want {
				t.Errorf("cache = %q, want %q", h.engine.Identity().Get(), tt.want)
			}
			if n := accounts.Sets(); n != tt.wantSets {
				t.Errorf("account writes = %d, want %d", n, tt.wantSets)
			}
		})
	}
}
