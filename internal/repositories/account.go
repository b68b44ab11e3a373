package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/infosys/internal/shared"
)

// AccountRepository stores opaque key/value fields for the authenticated caller.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new [AccountRepository] with the given database connection
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetAccountField returns the value stored under key, or [shared.ErrNotFound].
func (r *AccountRepository) GetAccountField(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM account_fields WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: account field %s", shared.ErrNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query account field: %w", err)
	}
	return value, nil
}

// SetAccountField inserts or replaces the value stored under key.
func (r *AccountRepository) SetAccountField(key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: account field key is required", shared.ErrInvalidInput)
	}

	query := `
		INSERT INTO account_fields (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := r.db.Exec(query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to upsert account field: %w", err)
	}
	return nil
}

// DeleteAccountField removes key. Removing an absent key is not an error.
func (r *AccountRepository) DeleteAccountField(key string) error {
	if _, err := r.db.Exec(`DELETE FROM account_fields WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete account field: %w", err)
	}
	return nil
}

// ListAccountFields returns every stored field.
func (r *AccountRepository) ListAccountFields() (map[string]string, error) {
	rows, err := r.db.Query(`SELECT key, value FROM account_fields ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query account fields: %w", err)
	}
	defer rows.Close()

	fields := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan account field: %w", err)
		}
		fields[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return fields, nil
}
