package repositories

import (
	"database/sql"
	"fmt"
)

// NextSequence bumps the single-row <table>_sequence counter and returns the new value.
// Sequences order rows for display; they are never used as identifiers.
func NextSequence(db *sql.DB, table string) (int64, error) {
	var seq int64
	query := fmt.Sprintf(`UPDATE %s_sequence SET value = value + 1 WHERE id = 1 RETURNING value`, table)
	if err := db.QueryRow(query).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to advance %s sequence: %w", table, err)
	}
	return seq, nil
}
