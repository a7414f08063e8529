package main

import (
	"net/http/httptest"
	"strings"
	"testing"

	"lf2-hq/datafile/pkg/config"
)

func TestNewMetricsServerServesMetrics(t *testing.T) {
	// Touch the collectors so the registry has something to expose.
	getMetrics()

	srv := newMetricsServer(":0")

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("GET /metrics = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "lf2data_loader_files_parsed_total") {
		t.Errorf("metrics output missing lf2data_loader_files_parsed_total:\n%s", rec.Body.String())
	}
}

func TestNewMetricsServerUnknownPath(t *testing.T) {
	srv := newMetricsServer(":0")

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != 404 {
		t.Errorf("GET / = %d, want 404", rec.Code)
	}
}

func TestLoadScanConfigDefaultsWithoutFile(t *testing.T) {
	cfgFile = "testdata/no-such-config.yaml"

	cfg, err := loadScanConfig(scanCmd)
	if err != nil {
		t.Fatalf("loadScanConfig() = %v, want nil", err)
	}
	if cfg.Data.Workers != config.DefaultWorkers {
		t.Errorf("Data.Workers = %d, want %d", cfg.Data.Workers, config.DefaultWorkers)
	}

	// The loaded configuration must be registered process-wide.
	got, err := config.GetConfig()
	if err != nil {
		t.Fatalf("GetConfig() = %v, want nil", err)
	}
	if got != cfg {
		t.Error("loadScanConfig did not register the configuration process-wide")
	}
}
