package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/udl-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/udl-cli/internal/core/domain"
	"github.com/custodia-labs/udl-cli/internal/core/ports/driven"
)

// jsonNull is the JSON representation of null.
const jsonNull = "null"

// Store is a SQLite-backed store for the standalone activities
// collection, the one content variant that does not ship as JSON
// documents.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.udl/data/activities.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".udl", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "activities.db")

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

// ActivityStore returns an ActivityStore interface backed by this store.
func (s *Store) ActivityStore() driven.ActivityStore {
	return &activityStore{store: s}
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
		// Extract version number (e.g., "0001_activities.up.sql" -> 1)
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

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Activity Store ====================

// activityStore implements driven.ActivityStore.
type activityStore struct {
	store *Store
}

var _ driven.ActivityStore = (*activityStore)(nil)

// Put stores or replaces an activity, keyed by its code.
func (s *activityStore) Put(ctx context.Context, activity domain.Activity) error {
	if activity.Code == "" {
		return fmt.Errorf("%w: activity code is required", domain.ErrInvalidInput)
	}

	titleJSON, err := json.Marshal(activity.Title)
	if err != nil {
		return fmt.Errorf("marshalling title: %w", err)
	}
	descriptionJSON, err := json.Marshal(activity.Description)
	if err != nil {
		return fmt.Errorf("marshalling description: %w", err)
	}
	gradeLevelJSON, err := json.Marshal(activity.GradeLevel)
	if err != nil {
		return fmt.Errorf("marshalling grade level: %w", err)
	}
	subjectJSON, err := json.Marshal(activity.Subject)
	if err != nil {
		return fmt.Errorf("marshalling subject: %w", err)
	}
	webToolsJSON, err := json.Marshal(activity.WebTools)
	if err != nil {
		return fmt.Errorf("marshalling web tools: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO activities (code, id, title, description, grade_level, subject, web_tools)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			id = excluded.id,
			title = excluded.title,
			description = excluded.description,
			grade_level = excluded.grade_level,
			subject = excluded.subject,
			web_tools = excluded.web_tools
	`, activity.Code, activity.ID, string(titleJSON), string(descriptionJSON),
		string(gradeLevelJSON), string(subjectJSON), string(webToolsJSON))

	if err != nil {
		return fmt.Errorf("saving activity: %w", err)
	}
	return nil
}

// List returns all activities in insertion order.
func (s *activityStore) List(ctx context.Context) ([]domain.Activity, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT code, id, title, description, grade_level, subject, web_tools
		FROM activities ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity //nolint:prealloc // size unknown from query
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}

	return activities, nil
}

// Close releases nothing; the wrapped store owns the connection.
func (s *activityStore) Close() error {
	return nil
}

// scanActivity scans an activity from *sql.Rows.
func scanActivity(rows *sql.Rows) (*domain.Activity, error) {
	var activity domain.Activity
	var titleJSON, descriptionJSON, gradeLevelJSON, subjectJSON string
	var webToolsJSON sql.NullString

	if err := rows.Scan(&activity.Code, &activity.ID, &titleJSON, &descriptionJSON,
		&gradeLevelJSON, &subjectJSON, &webToolsJSON); err != nil {
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	if err := json.Unmarshal([]byte(titleJSON), &activity.Title); err != nil {
		return nil, fmt.Errorf("unmarshalling title: %w", err)
	}
	if err := json.Unmarshal([]byte(descriptionJSON), &activity.Description); err != nil {
		return nil, fmt.Errorf("unmarshalling description: %w", err)
	}
	if err := json.Unmarshal([]byte(gradeLevelJSON), &activity.GradeLevel); err != nil {
		return nil, fmt.Errorf("unmarshalling grade level: %w", err)
	}
	if err := json.Unmarshal([]byte(subjectJSON), &activity.Subject); err != nil {
		return nil, fmt.Errorf("unmarshalling subject: %w", err)
	}

	if webToolsJSON.Valid && webToolsJSON.String != jsonNull {
		if err := json.Unmarshal([]byte(webToolsJSON.String), &activity.WebTools); err != nil {
			return nil, fmt.Errorf("unmarshalling web tools: %w", err)
		}
	}

	return &activity, nil
}
