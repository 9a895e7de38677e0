package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/wikifinder/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
)

// addBatchSize bounds how many tokens one INSERT statement carries.
// SQLite limits the number of bound parameters per statement.
const addBatchSize = 500

// Ensure Store implements the interface.
var _ driven.DictionaryStore = (*Store)(nil)

// Store is a SQLite-backed dictionary of per-token document frequencies.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.wikifinder/data/dictionary.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".wikifinder", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "dictionary.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// AddDocument records one document's distinct tokens, incrementing each
// token's document frequency and the article count. The whole document
// is recorded atomically.
func (s *Store) AddDocument(ctx context.Context, tokens []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for start := 0; start < len(tokens); start += addBatchSize {
		end := start + addBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]

		var b strings.Builder
		b.WriteString("INSERT INTO dictionary (token, document_count) VALUES ")
		args := make([]any, 0, len(batch))
		for i, token := range batch {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("(?, 1)")
			args = append(args, token)
		}
		b.WriteString(" ON CONFLICT(token) DO UPDATE SET document_count = document_count + 1")

		if _, err := tx.ExecContext(ctx, b.String(), args...); err != nil {
			return fmt.Errorf("recording tokens: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE corpus_stats SET article_count = article_count + 1 WHERE id = 1",
	); err != nil {
		return fmt.Errorf("updating article count: %w", err)
	}

	return tx.Commit()
}

// DocumentFrequency returns how many documents contain the token, or 0
// if the token is unknown.
func (s *Store) DocumentFrequency(ctx context.Context, token string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT document_count FROM dictionary WHERE token = ?", token,
	).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("querying document frequency: %w", err)
	}
	return count, nil
}

// DocumentFrequencies is the batch form of DocumentFrequency. Unknown
// tokens map to 0.
func (s *Store) DocumentFrequencies(ctx context.Context, tokens []string) (map[string]int, error) {
	result := make(map[string]int, len(tokens))
	if len(tokens) == 0 {
		return result, nil
	}
	for _, token := range tokens {
		result[token] = 0
	}

	placeholders := strings.Repeat("?, ", len(tokens)-1) + "?"
	args := make([]any, len(tokens))
	for i, token := range tokens {
		args[i] = token
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT token, document_count FROM dictionary WHERE token IN ("+placeholders+")",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("querying document frequencies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var token string
		var count int
		if err := rows.Scan(&token, &count); err != nil {
			return nil, fmt.Errorf("scanning document frequency: %w", err)
		}
		result[token] = count
	}
	return result, rows.Err()
}

// ArticleCount returns the total number of documents recorded.
func (s *Store) ArticleCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT article_count FROM corpus_stats WHERE id = 1",
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("querying article count: %w", err)
	}
	return count, nil
}

// TokenCount returns the number of distinct tokens recorded.
func (s *Store) TokenCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM dictionary").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("querying token count: %w", err)
	}
	return count, nil
}

// Reset clears the dictionary so prepare can rebuild it.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM dictionary"); err != nil {
		return fmt.Errorf("clearing dictionary: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE corpus_stats SET article_count = 0 WHERE id = 1",
	); err != nil {
		return fmt.Errorf("clearing article count: %w", err)
	}
	return tx.Commit()
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_dictionary.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}
