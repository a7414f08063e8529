// Package catalog provides persistence backends for parsed object data
// records.
//
// # Overview
//
// The catalog package maintains one record per parsed object data file:
// the parsed header name, frame and sprite sheet counts, the source
// checksum, and when the file was last parsed. Two implementations are
// provided:
//
//   - Memory: Fast in-memory storage (default, no persistence)
//   - SQLite: Lightweight file-based persistence with WAL checkpointing
//
// # Usage
//
//	// Create in-memory backend (default)
//	backend := catalog.NewMemoryBackend()
//
//	// Save a record
//	record := &catalog.Record{
//	    File:       "data/frozen.dat",
//	    ObjectName: "Frozen",
//	    FrameCount: 399,
//	    Checksum:   checksum,
//	}
//	err := backend.Save(ctx, record)
//
//	// Load a record
//	record, err := backend.Load(ctx, "data/frozen.dat")
//
// # Thread Safety
//
// All catalog backends are thread-safe and support concurrent access
// from multiple goroutines. Locking is handled internally by each backend.
package catalog
