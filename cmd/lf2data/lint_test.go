package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLintFilesValidFile(t *testing.T) {
	lintFlags.file = "testdata/valid.txt"
	lintFlags.dir = ""
	lintFlags.format = "text"

	if err := lintFiles(nil, []string{}); err != nil {
		t.Errorf("lintFiles() with valid file returned error: %v", err)
	}
}

func TestLintFilesInvalidFile(t *testing.T) {
	lintFlags.file = "testdata/invalid.txt"
	lintFlags.dir = ""
	lintFlags.format = "text"

	if err := lintFiles(nil, []string{}); err == nil {
		t.Error("lintFiles() with invalid file should return error")
	}
}

func TestLintFilesNonexistentFile(t *testing.T) {
	lintFlags.file = "testdata/nonexistent.txt"
	lintFlags.dir = ""
	lintFlags.format = "text"

	if err := lintFiles(nil, []string{}); err == nil {
		t.Error("lintFiles() with nonexistent file should return error")
	}
}

func TestLintFilesNoFileOrDir(t *testing.T) {
	lintFlags.file = ""
	lintFlags.dir = ""
	lintFlags.format = "text"

	if err := lintFiles(nil, []string{}); err == nil {
		t.Error("lintFiles() without file or dir should return error")
	}
}

func TestLintFilesJSONFormat(t *testing.T) {
	lintFlags.file = "testdata/valid.txt"
	lintFlags.dir = ""
	lintFlags.format = "json"

	if err := lintFiles(nil, []string{}); err != nil {
		t.Errorf("lintFiles() with JSON format returned error: %v", err)
	}
}

func TestLintFile(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		wantValid bool
	}{
		{
			name:      "valid object",
			file:      "testdata/valid.txt",
			wantValid: true,
		},
		{
			name:      "invalid object",
			file:      "testdata/invalid.txt",
			wantValid: false,
		},
		{
			name:      "nonexistent file",
			file:      "testdata/nonexistent.txt",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := lintFile(tt.file)
			if result.Valid != tt.wantValid {
				t.Errorf("lintFile(%q).Valid = %v, want %v",
					tt.file, result.Valid, tt.wantValid)
			}
		})
	}
}

func TestLintFileReportsPosition(t *testing.T) {
	result := lintFile("testdata/invalid.txt")
	if result.Valid {
		t.Fatal("lintFile() should mark broken file invalid")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(result.Errors))
	}
	if result.Errors[0].Line == 0 {
		t.Error("error should carry a line number")
	}
	if result.Errors[0].Type == "" {
		t.Error("error should carry a type")
	}
}

func TestLintFilesDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	data, err := os.ReadFile("testdata/valid.txt")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "valid.txt"), data, 0o644); err != nil {
		t.Fatal(err)
	}
	// Non-data files are ignored.
	if err := os.WriteFile(filepath.Join(tmpDir, "readme.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	lintFlags.file = ""
	lintFlags.dir = tmpDir
	lintFlags.format = "text"

	if err := lintFiles(nil, []string{}); err != nil {
		t.Errorf("lintFiles() with valid directory returned error: %v", err)
	}
}

func TestCollectDataFiles(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"b.dat", "a.txt", "notes.md"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := collectDataFiles(tmpDir)
	if err != nil {
		t.Fatalf("collectDataFiles() error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.txt" || filepath.Base(files[1]) != "b.dat" {
		t.Errorf("files not sorted: %v", files)
	}
}
