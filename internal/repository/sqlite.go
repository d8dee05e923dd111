package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mindscope-app/mindscope/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS collections (
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			payload TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, name)
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ReadCollection returns the stored payload for a collection, or nil when
// the key is absent.
func (s *SQLiteStore) ReadCollection(ctx context.Context, userID, name string) ([]byte, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM collections WHERE user_id = ? AND name = ?`,
		userID, name).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

// WriteCollection replaces the full collection payload, last write wins.
func (s *SQLiteStore) WriteCollection(ctx context.Context, userID, name string, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO collections (user_id, name, payload, updated_at) VALUES (?, ?, ?, ?)`,
		userID, name, string(payload), time.Now())
	return err
}

// DeleteCollection removes the collection key outright. Deleting an absent
// key is not an error.
func (s *SQLiteStore) DeleteCollection(ctx context.Context, userID, name string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM collections WHERE user_id = ? AND name = ?`,
		userID, name)
	return err
}

// CreateUser creates a new user.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *domain.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (user_id, username, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt)
	return err
}

// GetUser retrieves a user by ID.
func (s *SQLiteStore) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return scanUser(s.db.QueryRowContext(ctx,
		`SELECT user_id, username, email, password_hash, created_at FROM users WHERE user_id = ?`,
		userID))
}

// GetUserByEmail retrieves a user by email.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(s.db.QueryRowContext(ctx,
		`SELECT user_id, username, email, password_hash, created_at FROM users WHERE email = ?`,
		email))
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
