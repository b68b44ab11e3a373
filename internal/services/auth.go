// Access token provider for authenticated catalog API calls
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"

	"github.com/desertthunder/infosys/internal/shared"
)

// TokenProviderName is the provider key under which the catalog API token is stored.
const TokenProviderName = "hatchet"

// TokenStore loads persisted OAuth tokens by provider name.
type TokenStore interface {
	LoadToken(provider string) (*oauth2.Token, error)
}

// OAuthTokenProvider hands out the stored access token while it is valid.
//
// Refreshing expired tokens is left to whoever writes the store; an expired or
// missing token is reported as [shared.ErrAuthUnavailable].
type OAuthTokenProvider struct {
	mu     sync.Mutex
	source oauth2.TokenSource
	logger *log.Logger
}

// NewOAuthTokenProvider creates a provider backed by store.
func NewOAuthTokenProvider(store TokenStore, logger *log.Logger) *OAuthTokenProvider {
	if logger == nil {
		logger = shared.DiscardLogger()
	}
	src := &storeTokenSource{store: store, provider: TokenProviderName}
	return &OAuthTokenProvider{
		source: oauth2.ReuseTokenSource(nil, src),
		logger: logger,
	}
}

// EnsureAccessToken returns the current access token.
func (p *OAuthTokenProvider) EnsureAccessToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	tok, err := p.source.Token()
	p.mu.Unlock()

	if err != nil {
		p.logger.Debug("no access token", "error", err)
		return "", fmt.Errorf("%w: %v", shared.ErrAuthUnavailable, err)
	}
	if !tok.Valid() {
		return "", fmt.Errorf("%w: %w", shared.ErrAuthUnavailable, shared.ErrTokenExpired)
	}
	return tok.AccessToken, nil
}

type storeTokenSource struct {
	store    TokenStore
	provider string
}

func (s *storeTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.store.LoadToken(s.provider)
	if err != nil {
		return nil, err
	}
	if tok == nil || tok.AccessToken == "" {
		return nil, errors.New("stored token is empty")
	}
	return tok, nil
}

// StaticTokenStore serves a fixed token, e.g. one taken from the environment.
type StaticTokenStore struct {
	Token *oauth2.Token
}

func (s StaticTokenStore) LoadToken(string) (*oauth2.Token, error) {
	if s.Token == nil {
		return nil, shared.ErrNotAuthenticated
	}
	return s.Token, nil
}
