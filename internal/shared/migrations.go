package shared

import (
	"cmp"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Migration is one versioned schema change. Files are named <version>_<name>_{up,down}.sql.
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// parseMigrationName splits "0001_outcomes_up.sql" into (1, "outcomes", "up").
func parseMigrationName(file string) (version int, name, direction string, ok bool) {
	base := strings.TrimSuffix(file, ".sql")
	head, rest, found := strings.Cut(base, "_")
	if !found {
		return 0, "", "", false
	}
	version, err := strconv.Atoi(head)
	if err != nil {
		return 0, "", "", false
	}

	i := strings.LastIndex(rest, "_")
	if i < 0 {
		return 0, "", "", false
	}
	name, direction = rest[:i], rest[i+1:]
	if direction != "up" && direction != "down" {
		return 0, "", "", false
	}
	return version, name, direction, true
}

// loadMigrations reads the embedded scripts and returns complete migrations in version order.
func loadMigrations() ([]Migration, error) {
	files, err := fs.Glob(migrationFiles, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}

	byVersion := make(map[int]*Migration)
	for _, file := range files {
		version, name, direction, ok := parseMigrationName(path.Base(file))
		if !ok {
			continue
		}

		content, err := migrationFiles.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		m, seen := byVersion[version]
		if !seen {
			m = &Migration{Version: version, Name: name}
			byVersion[version] = m
		}
		if direction == "up" {
			m.Up = string(content)
		} else {
			m.Down = string(content)
		}
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.Up == "" || m.Down == "" {
			return nil, fmt.Errorf("incomplete migration %d (%s)", m.Version, m.Name)
		}
		migrations = append(migrations, *m)
	}
	slices.SortFunc(migrations, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })
	return migrations, nil
}

// PendingMigrations lists the migrations not yet recorded in schema_migrations.
func PendingMigrations(db *sql.DB) ([]Migration, error) {
	migrations, err := loadMigrations()
	if err != nil {
		return nil, err
	}
	if err := createMigrationsTable(db); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(migrations, func(m Migration) bool { return applied[m.Version] }), nil
}

// RunMigrations applies every pending migration, each in its own transaction.
func RunMigrations(db *sql.DB) error {
	pending, err := PendingMigrations(db)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	for _, m := range pending {
		err := inTx(db, func(tx *sql.Tx) error {
			if err := execScript(tx, m.Up); err != nil {
				return err
			}
			_, err := tx.Exec(`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`, m.Version, m.Name)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
	}
	return nil
}

// RollbackMigration reverts the most recently applied migration.
func RollbackMigration(db *sql.DB) error {
	migrations, err := loadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	current, ok, err := latestApplied(db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: no migrations to rollback", ErrNotFound)
	}

	i := slices.IndexFunc(migrations, func(m Migration) bool { return m.Version == current })
	if i < 0 {
		return fmt.Errorf("%w: migration version %d", ErrNotFound, current)
	}

	m := migrations[i]
	err = inTx(db, func(tx *sql.Tx) error {
		if err := execScript(tx, m.Down); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM schema_migrations WHERE version = ?`, m.Version)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to rollback migration %d (%s): %w", m.Version, m.Name, err)
	}
	return nil
}

// CurrentVersion returns the highest applied migration version, or 0 when none are applied.
func CurrentVersion(db *sql.DB) (int, error) {
	version, _, err := latestApplied(db)
	return version, err
}

// latestApplied reports the highest applied version and whether any migration is applied at all.
func latestApplied(db *sql.DB) (int, bool, error) {
	if err := createMigrationsTable(db); err != nil {
		return 0, false, err
	}
	var version sql.NullInt64
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&version); err != nil {
		return 0, false, err
	}
	return int(version.Int64), version.Valid, nil
}

func createMigrationsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func inTx(db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// execScript runs each statement of script. Statements are separated by ';'.
func execScript(tx *sql.Tx, script string) error {
	for _, stmt := range splitStatements(script) {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute statement: %w\nStatement: %s", err, stmt)
		}
	}
	return nil
}

// splitStatements strips "--" comments and blank lines, then splits on ';'.
func splitStatements(script string) []string {
	var b strings.Builder
	for line := range strings.Lines(script) {
		if i := strings.Index(line, "--"); i >= 0 {
			line = line[:i]
		}
		if line = strings.TrimSpace(line); line != "" {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	var stmts []string
	for stmt := range strings.SplitSeq(b.String(), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
