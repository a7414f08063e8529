// Package loader reads, decodes, and parses object data files in bulk,
// and keeps a catalog of the results.
//
// # Overview
//
// The loader builds on the objdata parser and the catalog package:
//
//   - Loader parses single files or whole directories with a worker
//     pool, computing checksums so unchanged files can be skipped.
//   - FileWatcher watches a data directory with fsnotify and triggers
//     debounced reloads on change.
//   - Scheduler rescans a directory on a cron schedule.
//   - Metrics exposes Prometheus counters and histograms for load
//     outcomes and parse latency.
//
// # Usage
//
//	backend := catalog.NewMemoryBackend()
//	l := loader.New(backend, loader.NewMetrics(), logger, nil)
//
//	results, err := l.LoadDir(ctx, "data")
//	if err != nil {
//	    return err
//	}
//	if errs := loader.CollectErrors(results); errs.HasErrors() {
//	    fmt.Println(errs)
//	}
//
// A parse failure in one file never aborts a directory load; each
// Result carries its own error.
package loader
