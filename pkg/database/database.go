// Package database provides the SQLite store behind taskroster.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// ErrNotOpen is returned by store methods called on a closed or nil store
var ErrNotOpen = errors.New("database is not open")

// DefaultPath is the database file used when nothing else is configured
const DefaultPath = "placeholder.db"

// Config holds database configuration.
type Config struct {
	Path        string        `json:"path" yaml:"path"`
	BusyTimeout time.Duration `json:"-" yaml:"-"`
}

// DefaultConfig returns the default database configuration.
func DefaultConfig() *Config {
	return &Config{
		Path:        DefaultPath,
		BusyTimeout: 5 * time.Second,
	}
}

// dsn builds the modernc connection string for a file path. The path is
// percent-encoded so '#', '?' and '%' reach SQLite as part of the name.
func (c *Config) dsn() string {
	timeout := c.BusyTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	path := &url.URL{Path: filepath.ToSlash(filepath.Clean(c.Path))}
	u := url.URL{
		Scheme:   "file",
		Opaque:   path.EscapedPath(),
		RawQuery: fmt.Sprintf("_pragma=busy_timeout(%d)", timeout.Milliseconds()),
	}
	return u.String()
}

// Open opens or creates the database file and makes sure the tables exist.
//
// A failure to open or reach the file is returned. A failure to create the
// tables is only logged and the store is still returned; later statements
// against missing tables will report their own errors.
func Open(ctx context.Context, cfg *Config) (*SQLiteStore, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("database path is required")
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection for the whole run; nothing here is concurrent.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", cfg.Path, err)
	}

	store := &SQLiteStore{db: db, path: cfg.Path}
	if err := store.EnsureSchema(ctx); err != nil {
		log.Printf("schema setup failed for %s: %v", cfg.Path, err)
	}

	return store, nil
}

// EnsureSchema creates the workers and tasks tables if they are missing
func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	if s == nil || s.db == nil {
		return ErrNotOpen
	}
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Path returns the database file path
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
