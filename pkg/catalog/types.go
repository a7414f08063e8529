package catalog

import (
	"context"
	"time"
)

// Backend defines the interface for catalog persistence.
// Implementations must be thread-safe and support concurrent access.
type Backend interface {
	// Save persists the record for a source file.
	// If a record for the same file already exists, it is updated.
	Save(ctx context.Context, record *Record) error

	// Load retrieves the record for a source file.
	// Returns nil if no record exists. Returns error on system failure.
	Load(ctx context.Context, file string) (*Record, error)

	// Delete removes the record for a source file.
	// Returns error on failure. No-op if the record doesn't exist.
	Delete(ctx context.Context, file string) error

	// List returns all records, ordered by file path.
	// Returns an empty slice if no records exist.
	List(ctx context.Context) ([]*Record, error)

	// Cleanup removes records not refreshed since the given time.
	// Returns the number of records deleted and any error.
	Cleanup(ctx context.Context, olderThan time.Time) (int, error)

	// Close releases any resources held by the backend.
	// The backend should not be used after calling Close.
	Close() error
}

// Record is the catalog entry for one parsed object data file. One
// record exists per source file; re-parsing the same file refreshes it
// in place.
type Record struct {
	// ID is a stable unique identifier assigned when the record is
	// first created.
	ID string

	// File is the source file path, the catalog key.
	File string

	// ObjectName is the parsed header name, e.g. "Frozen".
	ObjectName string

	// FrameCount is the number of frames the file defines.
	FrameCount int

	// SpriteFileCount is the number of sprite sheet descriptors.
	SpriteFileCount int

	// Checksum is the hex SHA-256 of the decoded source bytes, used to
	// skip re-parsing unchanged files.
	Checksum string

	// ParsedAt is when the file was last successfully parsed.
	ParsedAt time.Time

	// CreatedAt is when the record was first created.
	CreatedAt time.Time
}
