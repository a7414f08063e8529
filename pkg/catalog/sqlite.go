package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

// SQLiteBackend implements Backend using SQLite for persistence.
// This backend survives restarts and is suitable for tooling that
// incrementally maintains a catalog over a large data directory.
//
// SQLiteBackend uses a write-ahead log (WAL) for better concurrent
// performance and periodic checkpointing to balance write performance
// with durability.
type SQLiteBackend struct {
	db                 *sql.DB
	dbPath             string
	checkpointInterval time.Duration
	done               chan struct{}
	mu                 sync.RWMutex
	closeOnce          sync.Once

	// preparedStatements contains pre-compiled SQL statements for performance
	saveStmt    *sql.Stmt
	loadStmt    *sql.Stmt
	deleteStmt  *sql.Stmt
	listStmt    *sql.Stmt
	cleanupStmt *sql.Stmt
}

// SQLiteBackendConfig configures the SQLite backend.
type SQLiteBackendConfig struct {
	// DBPath is the path to the SQLite database file.
	DBPath string

	// CheckpointInterval is how often to checkpoint the WAL.
	// Default: 5 minutes
	CheckpointInterval time.Duration

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// NewSQLiteBackend creates a new SQLite catalog backend with default settings.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	return NewSQLiteBackendWithConfig(SQLiteBackendConfig{
		DBPath:             dbPath,
		CheckpointInterval: 5 * time.Minute,
		BusyTimeout:        5 * time.Second,
	})
}

// NewSQLiteBackendWithConfig creates a new SQLite backend with custom configuration.
func NewSQLiteBackendWithConfig(cfg SQLiteBackendConfig) (*SQLiteBackend, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}
	if cfg.CheckpointInterval == 0 {
		cfg.CheckpointInterval = 5 * time.Minute
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	// Open database with WAL mode and busy timeout
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		cfg.DBPath, int(cfg.BusyTimeout.Milliseconds()))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	backend := &SQLiteBackend{
		db:                 db,
		dbPath:             cfg.DBPath,
		checkpointInterval: cfg.CheckpointInterval,
		done:               make(chan struct{}),
	}

	if err := backend.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if err := backend.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}

	// Start background checkpoint goroutine
	go backend.checkpointLoop()

	return backend, nil
}

// initSchema creates the database schema if it doesn't exist.
func (s *SQLiteBackend) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS object_records (
		id TEXT NOT NULL,
		file TEXT NOT NULL,
		object_name TEXT NOT NULL,
		frame_count INTEGER NOT NULL,
		sprite_file_count INTEGER NOT NULL,
		checksum TEXT NOT NULL,
		parsed_at INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		PRIMARY KEY (file)
	);

	CREATE INDEX IF NOT EXISTS idx_object_name ON object_records(object_name);
	CREATE INDEX IF NOT EXISTS idx_parsed_at ON object_records(parsed_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// prepareStatements prepares SQL statements for reuse.
func (s *SQLiteBackend) prepareStatements() error {
	var err error

	s.saveStmt, err = s.db.Prepare(`
		INSERT INTO object_records (id, file, object_name, frame_count, sprite_file_count, checksum, parsed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (file) DO UPDATE SET
			object_name = excluded.object_name,
			frame_count = excluded.frame_count,
			sprite_file_count = excluded.sprite_file_count,
			checksum = excluded.checksum,
			parsed_at = excluded.parsed_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare save statement: %w", err)
	}

	s.loadStmt, err = s.db.Prepare(`
		SELECT id, file, object_name, frame_count, sprite_file_count, checksum, parsed_at, created_at
		FROM object_records
		WHERE file = ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare load statement: %w", err)
	}

	s.deleteStmt, err = s.db.Prepare(`
		DELETE FROM object_records
		WHERE file = ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare delete statement: %w", err)
	}

	s.listStmt, err = s.db.Prepare(`
		SELECT id, file, object_name, frame_count, sprite_file_count, checksum, parsed_at, created_at
		FROM object_records
		ORDER BY file
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare list statement: %w", err)
	}

	s.cleanupStmt, err = s.db.Prepare(`
		DELETE FROM object_records
		WHERE parsed_at < ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare cleanup statement: %w", err)
	}

	return nil
}

// Save persists the record for a source file.
func (s *SQLiteBackend) Save(ctx context.Context, record *Record) error {
	if record == nil {
		return fmt.Errorf("record cannot be nil")
	}
	if record.File == "" {
		return fmt.Errorf("record file cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Existing records keep their identity and creation time.
	existing, err := s.loadLocked(ctx, record.File)
	if err != nil {
		return err
	}
	now := time.Now()
	if existing != nil {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	if record.ParsedAt.IsZero() {
		record.ParsedAt = now
	}

	_, err = s.saveStmt.ExecContext(ctx,
		record.ID,
		record.File,
		record.ObjectName,
		record.FrameCount,
		record.SpriteFileCount,
		record.Checksum,
		record.ParsedAt.Unix(),
		record.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// Load retrieves the record for a source file.
func (s *SQLiteBackend) Load(ctx context.Context, file string) (*Record, error) {
	if file == "" {
		return nil, fmt.Errorf("file cannot be empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadLocked(ctx, file)
}

// loadLocked runs the load query. Caller must hold at least a read lock.
func (s *SQLiteBackend) loadLocked(ctx context.Context, file string) (*Record, error) {
	var (
		record   Record
		parsedAt int64
		created  int64
	)

	err := s.loadStmt.QueryRowContext(ctx, file).Scan(
		&record.ID,
		&record.File,
		&record.ObjectName,
		&record.FrameCount,
		&record.SpriteFileCount,
		&record.Checksum,
		&parsedAt,
		&created,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load record: %w", err)
	}

	record.ParsedAt = time.Unix(parsedAt, 0)
	record.CreatedAt = time.Unix(created, 0)
	return &record, nil
}

// Delete removes the record for a source file.
func (s *SQLiteBackend) Delete(ctx context.Context, file string) error {
	if file == "" {
		return fmt.Errorf("file cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.deleteStmt.ExecContext(ctx, file)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return nil
}

// List returns all records ordered by file path.
func (s *SQLiteBackend) List(ctx context.Context) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.listStmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var (
			record   Record
			parsedAt int64
			created  int64
		)

		if err := rows.Scan(
			&record.ID,
			&record.File,
			&record.ObjectName,
			&record.FrameCount,
			&record.SpriteFileCount,
			&record.Checksum,
			&parsedAt,
			&created,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		record.ParsedAt = time.Unix(parsedAt, 0)
		record.CreatedAt = time.Unix(created, 0)
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// Cleanup removes records not refreshed since the given time.
func (s *SQLiteBackend) Cleanup(ctx context.Context, olderThan time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.cleanupStmt.ExecContext(ctx, olderThan.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(deleted), nil
}

// Close releases any resources held by the backend.
// Close is idempotent and safe to call multiple times.
func (s *SQLiteBackend) Close() error {
	var closeErr error

	s.closeOnce.Do(func() {
		// Signal checkpoint goroutine to stop
		close(s.done)

		// Close prepared statements
		if s.saveStmt != nil {
			s.saveStmt.Close()
		}
		if s.loadStmt != nil {
			s.loadStmt.Close()
		}
		if s.deleteStmt != nil {
			s.deleteStmt.Close()
		}
		if s.listStmt != nil {
			s.listStmt.Close()
		}
		if s.cleanupStmt != nil {
			s.cleanupStmt.Close()
		}

		// Close database
		if s.db != nil {
			// Run final checkpoint
			_, _ = s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
			closeErr = s.db.Close()
		}
	})

	return closeErr
}

// checkpointLoop runs periodic WAL checkpoints.
func (s *SQLiteBackend) checkpointLoop() {
	ticker := time.NewTicker(s.checkpointInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _ = s.db.Exec("PRAGMA wal_checkpoint(PASSIVE)")
		case <-s.done:
			return
		}
	}
}
