// ABOUTME: SQLite-backed persistence for remote source configuration
// ABOUTME: A file-based store that survives restarts; list order is preserved via a position column

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"multistore-products-api/core/domain"
)

// Store implements the SourceStore interface using SQLite
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the source configuration database at the
// given path.
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "sources.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{db: db}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the sources table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS sources (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			base_url TEXT NOT NULL,
			api_version TEXT NOT NULL,
			consumer_key TEXT NOT NULL,
			consumer_secret TEXT NOT NULL,
			enabled INTEGER NOT NULL,
			position INTEGER NOT NULL
		);
	`

	_, err := s.db.Exec(query)
	return err
}

// List returns every configured source in stored order
func (s *Store) List(ctx context.Context) ([]domain.Source, error) {
	query := `
		SELECT id, name, base_url, api_version, consumer_key, consumer_secret, enabled
		FROM sources
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	defer rows.Close()

	sources := make([]domain.Source, 0)
	for rows.Next() {
		var src domain.Source
		var enabled int

		if err := rows.Scan(&src.ID, &src.Name, &src.BaseURL, &src.APIVersion,
			&src.ConsumerKey, &src.ConsumerSecret, &enabled); err != nil {
			return nil, fmt.Errorf("failed to scan source row: %w", err)
		}

		src.Enabled = enabled != 0
		sources = append(sources, src)
	}

	return sources, rows.Err()
}

// Replace persists the given sources as the complete new configuration
// inside one transaction, so readers never observe a partial list.
func (s *Store) Replace(ctx context.Context, sources []domain.Source) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sources"); err != nil {
		return fmt.Errorf("failed to clear sources: %w", err)
	}

	insert := `
		INSERT INTO sources (id, name, base_url, api_version, consumer_key, consumer_secret, enabled, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	for position, src := range sources {
		enabled := 0
		if src.Enabled {
			enabled = 1
		}

		if _, err := tx.ExecContext(ctx, insert, src.ID, src.Name, src.BaseURL,
			src.APIVersion, src.ConsumerKey, src.ConsumerSecret, enabled, position); err != nil {
			return fmt.Errorf("failed to insert source %s: %w", src.ID, err)
		}
	}

	return tx.Commit()
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
