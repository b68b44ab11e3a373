package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/infosys/internal/models"
	"github.com/desertthunder/infosys/internal/shared"
)

// OutcomeRepository implements models.Repository[*models.OutcomeRecord] for the request outcome log.
//
// Records are append-only apart from soft deletes; the sequence gives a stable insertion order.
type OutcomeRepository struct {
	db *sql.DB
}

// NewOutcomeRepository creates a new OutcomeRepository with the given database connection
func NewOutcomeRepository(db *sql.DB) *OutcomeRepository {
	return &OutcomeRepository{db: db}
}

// Create inserts a new [models.OutcomeRecord] with generated ID and sequence
func (r *OutcomeRepository) Create(record *models.OutcomeRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "outcomes")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	record.SetID(id)
	record.SetSequence(sequence)

	query := `
		INSERT INTO outcomes (id, sequence, request_id, kind, status, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		record.RequestID(),
		record.Kind(),
		record.Status(),
		record.Error(),
		record.Duration().Milliseconds(),
		record.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert outcome: %w", err)
	}

	return nil
}

// Get retrieves an outcome by ID, excluding soft-deleted records
func (r *OutcomeRepository) Get(id string) (*models.OutcomeRecord, error) {
	query := `
		SELECT id, sequence, request_id, kind, status, error, duration_ms, created_at
		FROM outcomes
		WHERE id = ? AND deleted_at IS NULL
	`

	record, err := scanOutcome(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: outcome %s", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query outcome: %w", err)
	}
	return record, nil
}

// Delete soft-deletes an outcome by ID
func (r *OutcomeRepository) Delete(id string) error {
	query := `
		UPDATE outcomes
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete outcome: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: outcome not found or already deleted: %s", shared.ErrNotFound, id)
	}

	return nil
}

// List retrieves outcomes matching the given criteria, newest first.
//
// Supported criteria: "status", "kind", "request_id" (string) and "limit" (int).
func (r *OutcomeRepository) List(criteria map[string]any) ([]*models.OutcomeRecord, error) {
	query := `
		SELECT id, sequence, request_id, kind, status, error, duration_ms, created_at
		FROM outcomes
		WHERE deleted_at IS NULL
	`

	args := []any{}
	for _, col := range []string{"status", "kind", "request_id"} {
		if v, ok := criteria[col].(string); ok && v != "" {
			query += " AND " + col + " = ?"
			args = append(args, v)
		}
	}

	query += " ORDER BY sequence DESC"
	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query outcomes: %w", err)
	}
	defer rows.Close()

	var records []*models.OutcomeRecord
	for rows.Next() {
		record, err := scanOutcome(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outcome: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}

// CountByStatus returns the number of live outcomes per status.
func (r *OutcomeRepository) CountByStatus() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM outcomes WHERE deleted_at IS NULL GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count outcomes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan outcome count: %w", err)
		}
		counts[status] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return counts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOutcome(s scanner) (*models.OutcomeRecord, error) {
	var (
		id         string
		sequence   int64
		requestID  string
		kind       string
		status     string
		errMessage string
		durationMS int64
		createdAt  time.Time
	)

	if err := s.Scan(&id, &sequence, &requestID, &kind, &status, &errMessage, &durationMS, &createdAt); err != nil {
		return nil, err
	}

	record := models.NewOutcomeRecord(id, requestID, kind, status)
	record.SetSequence(sequence)
	record.SetError(errMessage)
	record.SetDuration(time.Duration(durationMS) * time.Millisecond)
	record.SetCreatedAt(createdAt)
	return record, nil
}
