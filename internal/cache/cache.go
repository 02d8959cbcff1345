package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/digitalbazaar/jsonld-cli/internal/model"
)

// ErrMiss is returned by Get when the URL is absent or the entry is older
// than the caller's freshness bound.
var ErrMiss = errors.New("cache miss")

// DocumentCache stores fetched secondary resources in a SQLite database.
// It manages connection pooling and is safe for use from multiple
// goroutines, though a single CLI invocation rarely needs that.
//
// Design decision: We use one database file for all cached documents
// rather than one file per origin. Entries are tiny and keyed by full URL,
// so there is nothing to gain from sharding, and a single file keeps
// purging trivial.
type DocumentCache struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures DocumentCache behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging. Recommended; it keeps reads
	// unblocked if two invocations share the cache.
	EnableWAL bool
}

// DefaultOptions returns the default cache options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a DocumentCache at the specified path.
// If CreateIfNotExists is true, the directory and database file are created.
func Open(dbPath string, opts Options) (*DocumentCache, error) {
	// Build connection string.
	// modernc.org/sqlite uses mode=rw to prevent creating new files and
	// mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("cache database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check cache path: %w", err)
		}
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite only supports one writer; a second connection buys nothing
	// for this workload.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	dc := &DocumentCache{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := dc.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	return dc, nil
}

// Close closes the database connection.
func (dc *DocumentCache) Close() error {
	return dc.db.Close()
}

// Path returns the path of the backing database file.
func (dc *DocumentCache) Path() string {
	return dc.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (dc *DocumentCache) createTables() error {
	schema := `
	-- Documents store one fetched secondary resource per URL
	CREATE TABLE IF NOT EXISTS documents (
		url TEXT PRIMARY KEY,
		content_type TEXT,
		context_url TEXT,
		body BLOB NOT NULL,
		fetched_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_documents_fetched_at ON documents(fetched_at);
	`

	_, err := dc.db.ExecContext(context.Background(), schema)
	return err
}

// Get returns the cached resource for url if it was fetched within maxAge.
// Stale or absent entries return ErrMiss.
func (dc *DocumentCache) Get(ctx context.Context, url string, maxAge time.Duration) (*model.RemoteResource, error) {
	query := `
	SELECT url, content_type, context_url, body, fetched_at
	FROM documents
	WHERE url = ?
	`

	var res model.RemoteResource
	row := dc.db.QueryRowContext(ctx, query, url)
	if err := row.Scan(&res.URL, &res.ContentType, &res.ContextURL, &res.Body, &res.FetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if time.Since(res.FetchedAt) > maxAge {
		return nil, ErrMiss
	}
	return &res, nil
}

// Put inserts or replaces the cached resource for its URL.
func (dc *DocumentCache) Put(ctx context.Context, res *model.RemoteResource) error {
	query := `
	INSERT INTO documents (url, content_type, context_url, body, fetched_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(url) DO UPDATE SET
		content_type = excluded.content_type,
		context_url = excluded.context_url,
		body = excluded.body,
		fetched_at = excluded.fetched_at
	`

	if _, err := dc.db.ExecContext(ctx, query,
		res.URL, res.ContentType, res.ContextURL, res.Body, res.FetchedAt); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Purge removes entries fetched before the cutoff. It returns the number
// of entries removed.
func (dc *DocumentCache) Purge(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := dc.db.ExecContext(ctx,
		"DELETE FROM documents WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}
	return result.RowsAffected()
}

// Count returns the number of cached documents.
func (dc *DocumentCache) Count(ctx context.Context) (int64, error) {
	var n int64
	err := dc.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}
	return n, nil
}
