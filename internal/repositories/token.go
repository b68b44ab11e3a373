package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"github.com/desertthunder/infosys/internal/shared"
)

// TokenRepository persists one [oauth2.Token] per provider.
type TokenRepository struct {
	db *sql.DB
}

// NewTokenRepository creates a new [TokenRepository] with the given database connection
func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// SaveToken inserts or replaces the token for provider.
func (r *TokenRepository) SaveToken(provider string, tok *oauth2.Token) error {
	if provider == "" || tok == nil || tok.AccessToken == "" {
		return fmt.Errorf("%w: provider and access token are required", shared.ErrInvalidInput)
	}

	var expiry sql.NullTime
	if !tok.Expiry.IsZero() {
		expiry = sql.NullTime{Time: tok.Expiry, Valid: true}
	}

	query := `
		INSERT INTO tokens (provider, access_token, token_type, refresh_token, expiry, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(provider) DO UPDATE SET
			access_token = excluded.access_token,
			token_type = excluded.token_type,
			refresh_token = excluded.refresh_token,
			expiry = excluded.expiry,
			updated_at = excluded.updated_at
	`
	_, err := r.db.Exec(query, provider, tok.AccessToken, tok.TokenType, tok.RefreshToken, expiry, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// LoadToken returns the token stored for provider, or [shared.ErrNotFound].
func (r *TokenRepository) LoadToken(provider string) (*oauth2.Token, error) {
	query := `
		SELECT access_token, token_type, refresh_token, expiry
		FROM tokens
		WHERE provider = ?
	`

	var (
		tok    oauth2.Token
		expiry sql.NullTime
	)
	err := r.db.QueryRow(query, provider).Scan(&tok.AccessToken, &tok.TokenType, &tok.RefreshToken, &expiry)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: token for %s", shared.ErrNotFound, provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query token: %w", err)
	}
	if expiry.Valid {
		tok.Expiry = expiry.Time
	}
	return &tok, nil
}

// DeleteToken removes the token for provider.
func (r *TokenRepository) DeleteToken(provider string) error {
	if _, err := r.db.Exec(`DELETE FROM tokens WHERE provider = ?`, provider); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
