package loader

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"lf2-hq/datafile/pkg/catalog"
	"lf2-hq/datafile/pkg/codec"
	"lf2-hq/datafile/pkg/objdata/ast"
	oderrors "lf2-hq/datafile/pkg/objdata/errors"
	"lf2-hq/datafile/pkg/objdata/parser"
)

// Config contains configuration for the loader.
type Config struct {
	// Workers is the number of concurrent parse workers for directory
	// loads (default: number of CPUs).
	Workers int

	// Extensions is the list of file extensions to load
	// (default: ".dat", ".txt").
	Extensions []string

	// SkipUnchanged skips files whose checksum matches the catalog
	// record from a previous load. Requires a catalog backend.
	SkipUnchanged bool

	// OnProgress, if set, is called after each file of a directory
	// load completes, with the number of finished files and the total.
	// Callbacks are serialized; they must not block for long.
	OnProgress func(completed, total int)
}

// DefaultConfig returns the default loader configuration.
func DefaultConfig() *Config {
	return &Config{
		Workers:    runtime.NumCPU(),
		Extensions: []string{".dat", ".txt"},
	}
}

// Loader reads, decodes, and parses object data files, and maintains
// catalog records for them. A single Loader may be shared by any number
// of goroutines.
type Loader struct {
	parser  *parser.Parser
	backend catalog.Backend // optional; nil disables the catalog
	metrics *Metrics        // optional; nil disables instrumentation
	logger  *slog.Logger
	config  *Config
}

// New creates a new loader. backend and metrics may be nil.
func New(backend catalog.Backend, metrics *Metrics, logger *slog.Logger, config *Config) *Loader {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if len(config.Extensions) == 0 {
		config.Extensions = []string{".dat", ".txt"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Loader{
		parser:  parser.NewParser(),
		backend: backend,
		metrics: metrics,
		logger:  logger.With("component", "loader"),
		config:  config,
	}
}

// Result is the outcome of loading one file. Exactly one of Object and
// Err is set, unless the file was skipped as unchanged.
type Result struct {
	File     string
	Object   *ast.ObjectData
	Checksum string
	Skipped  bool
	Err      *oderrors.Error
}

// LoadFile reads, decodes, parses, and catalogs a single file.
func (l *Loader) LoadFile(ctx context.Context, path string) *Result {
	start := time.Now()
	result := l.loadFile(ctx, path)
	l.observe(result, time.Since(start))
	return result
}

func (l *Loader) loadFile(ctx context.Context, path string) *Result {
	result := &Result{File: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = &oderrors.Error{
			Type:     oderrors.ErrorTypeIO,
			Message:  "failed to read file: " + err.Error(),
			Location: ast.Location{File: path},
		}
		return result
	}

	if strings.EqualFold(filepath.Ext(path), ".dat") {
		decoded, err := codec.Decode(data)
		if err != nil {
			result.Err = &oderrors.Error{
				Type:     oderrors.ErrorTypeIO,
				Message:  "failed to decode data file: " + err.Error(),
				Location: ast.Location{File: path},
			}
			return result
		}
		data = decoded
	}

	sum := sha256.Sum256(data)
	result.Checksum = hex.EncodeToString(sum[:])

	if l.config.SkipUnchanged && l.backend != nil {
		record, err := l.backend.Load(ctx, path)
		if err != nil {
			l.logger.Warn("catalog lookup failed", "file", path, "error", err)
		} else if record != nil && record.Checksum == result.Checksum {
			l.logger.Debug("file unchanged, skipping", "file", path)
			result.Skipped = true
			return result
		}
	}

	object, err := l.parser.Parse(data, path)
	if err != nil {
		parseErr, ok := err.(*oderrors.Error)
		if !ok {
			parseErr = &oderrors.Error{
				Type:     oderrors.ErrorTypeIO,
				Message:  err.Error(),
				Location: ast.Location{File: path},
			}
		}
		result.Err = parseErr
		return result
	}
	result.Object = object

	if l.backend != nil {
		record := &catalog.Record{
			File:            path,
			ObjectName:      object.Header.Name,
			FrameCount:      object.FrameCount(),
			SpriteFileCount: len(object.Header.SpriteFiles),
			Checksum:        result.Checksum,
			ParsedAt:        time.Now(),
		}
		if err := l.backend.Save(ctx, record); err != nil {
			l.logger.Warn("catalog save failed", "file", path, "error", err)
		}
	}

	return result
}

// LoadDir walks dir for object data files and loads them concurrently
// with the configured worker count. Results are returned ordered by
// file path. A file that fails to parse produces a Result with Err set;
// the walk itself failing is the only error return.
func (l *Loader) LoadDir(ctx context.Context, dir string) ([]*Result, error) {
	files, err := l.collectFiles(dir)
	if err != nil {
		return nil, err
	}

	l.logger.Info("loading directory",
		"dir", dir,
		"files", len(files),
		"workers", l.config.Workers,
	)

	jobs := make(chan string)
	results := make([]*Result, 0, len(files))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for i := 0; i < l.config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				result := l.LoadFile(ctx, path)
				mu.Lock()
				results = append(results, result)
				if l.config.OnProgress != nil {
					l.config.OnProgress(len(results), len(files))
				}
				mu.Unlock()
			}
		}()
	}

	for _, path := range files {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].File < results[j].File
	})

	return results, nil
}

// collectFiles walks dir and returns the paths of all files with a
// configured extension, ordered by path.
func (l *Loader) collectFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if l.hasValidExtension(filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}

// hasValidExtension checks if a file extension should be loaded.
func (l *Loader) hasValidExtension(ext string) bool {
	for _, validExt := range l.config.Extensions {
		if strings.EqualFold(ext, validExt) {
			return true
		}
	}
	return false
}

// observe records metrics and logs for one load result.
func (l *Loader) observe(result *Result, elapsed time.Duration) {
	switch {
	case result.Skipped:
		if l.metrics != nil {
			l.metrics.RecordFileSkipped()
		}
	case result.Err != nil:
		if l.metrics != nil {
			l.metrics.RecordFileFailed(result.Err.Type)
		}
		l.logger.Error("parse failed",
			"file", result.File,
			"error", result.Err.OneLine(),
		)
	default:
		if l.metrics != nil {
			l.metrics.RecordFileParsed(len(result.Object.Frames), elapsed.Seconds())
		}
		l.logger.Debug("parsed",
			"file", result.File,
			"object", result.Object.Header.Name,
			"frames", result.Object.FrameCount(),
			"elapsed", elapsed,
		)
	}
}

// CollectErrors aggregates the failures of a batch load into an error
// list. It returns an empty list when every file loaded cleanly.
func CollectErrors(results []*Result) *oderrors.ErrorList {
	list := oderrors.NewErrorList()
	for _, result := range results {
		if result.Err != nil {
			list.Add(result.Err)
		}
	}
	return list
}
