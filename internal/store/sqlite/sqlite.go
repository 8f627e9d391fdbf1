package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/roams-app/roams-server/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS comments (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	place     TEXT NOT NULL,
	user      TEXT NOT NULL,
	message   TEXT NOT NULL,
	timestamp DATETIME NOT NULL
);
`

// SQLiteStore implements store.CommentStore for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLite store and applies the comments schema.
// dbPath is the path to the SQLite database file; ":memory:" works for tests.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AppendComment persists a new comment, assigning its id and timestamp.
// The timestamp is taken from the server clock so the stored row and the
// broadcast payload carry the same instant.
func (s *SQLiteStore) AppendComment(ctx context.Context, place, user, message string) (*store.Comment, error) {
	now := time.Now().UTC()

	query := `
		INSERT INTO comments (place, user, message, timestamp)
		VALUES (?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query, place, user, message, now)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	return &store.Comment{
		ID:        id,
		Place:     place,
		User:      user,
		Message:   message,
		Timestamp: now,
	}, nil
}

// ListCommentsByPlace returns the full comment history for a place, most
// recent first. The id tiebreak keeps sequential appends in a stable order
// when wall-clock timestamps collide.
func (s *SQLiteStore) ListCommentsByPlace(ctx context.Context, place string) ([]*store.Comment, error) {
	query := `
		SELECT id, place, user, message, timestamp
		FROM comments
		WHERE place = ?
		ORDER BY timestamp DESC, id DESC
	`
	rows, err := s.db.QueryContext(ctx, query, place)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*store.Comment, 0)
	for rows.Next() {
		var c store.Comment
		if err := rows.Scan(&c.ID, &c.Place, &c.User, &c.Message, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}
