package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryBackend implements Backend using in-memory storage.
// This is the default backend and provides fast access with no
// persistence. All data is lost when the process exits.
//
// MemoryBackend is thread-safe and supports concurrent access using
// sync.RWMutex.
type MemoryBackend struct {
	// records maps source file path to catalog record.
	records map[string]*Record

	// mu protects access to the records map.
	mu sync.RWMutex
}

// NewMemoryBackend creates a new in-memory catalog backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		records: make(map[string]*Record),
	}
}

// Save persists the record for a source file.
func (m *MemoryBackend) Save(ctx context.Context, record *Record) error {
	if record == nil {
		return fmt.Errorf("record cannot be nil")
	}
	if record.File == "" {
		return fmt.Errorf("record file cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if existing, ok := m.records[record.File]; ok {
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

	m.records[record.File] = record
	return nil
}

// Load retrieves the record for a source file.
func (m *MemoryBackend) Load(ctx context.Context, file string) (*Record, error) {
	if file == "" {
		return nil, fmt.Errorf("file cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.records[file]
	if !exists {
		return nil, nil
	}
	return record, nil
}

// Delete removes the record for a source file.
func (m *MemoryBackend) Delete(ctx context.Context, file string) error {
	if file == "" {
		return fmt.Errorf("file cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, file)
	return nil
}

// List returns all records ordered by file path.
func (m *MemoryBackend) List(ctx context.Context) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Record, 0, len(m.records))
	for _, record := range m.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].File < records[j].File
	})

	return records, nil
}

// Cleanup removes records not refreshed since the given time.
func (m *MemoryBackend) Cleanup(ctx context.Context, olderThan time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deleted := 0
	for file, record := range m.records {
		if record.ParsedAt.Before(olderThan) {
			delete(m.records, file)
			deleted++
		}
	}

	return deleted, nil
}

// Close releases any resources held by the backend.
func (m *MemoryBackend) Close() error {
	return nil
}

// Size returns the current number of stored records.
// This is useful for monitoring and testing.
func (m *MemoryBackend) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
