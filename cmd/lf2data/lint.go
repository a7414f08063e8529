package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"lf2-hq/datafile/pkg/cli"
	"lf2-hq/datafile/pkg/objdata"
	oderrors "lf2-hq/datafile/pkg/objdata/errors"
)

var lintFlags struct {
	file   string
	dir    string
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate object data files",
	Long: `Validate object data files for structural and semantic errors.

The lint command parses data files and reports every problem found:
  - Grammar violations (missing block terminators, malformed values)
  - Out-of-range numeric values
  - Semantic violations (duplicate frame numbers, incomplete sprite
    descriptors, missing object name)

Examples:
  # Lint a single file
  lf2data lint --file data/frozen.dat

  # Lint a directory
  lf2data lint --dir data/

  # JSON output for CI/CD
  lf2data lint --dir data/ --format json`,
	RunE: lintFiles,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "data file to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of data files")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

func lintFiles(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}

	var files []string

	if lintFlags.file != "" {
		files = append(files, lintFlags.file)
	}

	if lintFlags.dir != "" {
		found, err := collectDataFiles(lintFlags.dir)
		if err != nil {
			return fmt.Errorf("failed to list data files: %w", err)
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		return fmt.Errorf("no data files found")
	}

	results := make([]LintResult, 0, len(files))
	for _, file := range files {
		results = append(results, lintFile(file))
	}

	if lintFlags.format == "json" {
		return outputJSON(results)
	}
	return outputText(results)
}

// collectDataFiles lists .dat and .txt files directly under dir.
func collectDataFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".dat", ".txt":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// LintResult represents the validation result for a single data file.
type LintResult struct {
	File   string      `json:"file"`
	Object string      `json:"object,omitempty"`
	Frames int         `json:"frames,omitempty"`
	Valid  bool        `json:"valid"`
	Errors []LintError `json:"errors,omitempty"`
}

// LintError represents a single validation error.
type LintError struct {
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
	Message    string `json:"message"`
	Type       string `json:"type,omitempty"`
	Field      string `json:"field,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func lintFile(path string) LintResult {
	result := LintResult{
		File:  path,
		Valid: true,
	}

	obj, err := objdata.ParseFile(path)
	if err != nil {
		result.Valid = false

		var parseErr *oderrors.Error
		if errors.As(err, &parseErr) {
			result.Errors = append(result.Errors, LintError{
				Line:       parseErr.Location.Line,
				Column:     parseErr.Location.Column,
				Message:    parseErr.Message,
				Type:       string(parseErr.Type),
				Field:      parseErr.Field,
				Suggestion: parseErr.Suggestion,
			})
		} else {
			result.Errors = append(result.Errors, LintError{
				Message: err.Error(),
			})
		}
		return result
	}

	result.Object = obj.Header.Name
	result.Frames = obj.FrameCount()
	return result
}

func outputText(results []LintResult) error {
	totalErrors := 0

	for _, result := range results {
		if result.Valid {
			fmt.Printf("✓ %s: %s (%d frames)\n", result.File, result.Object, result.Frames)
			continue
		}

		for _, lintErr := range result.Errors {
			fmt.Printf("✗ %s: %s", result.File, lintErr.Message)
			if lintErr.Line > 0 {
				fmt.Printf(" (line %d", lintErr.Line)
				if lintErr.Column > 0 {
					fmt.Printf(", col %d", lintErr.Column)
				}
				fmt.Print(")")
			}
			if lintErr.Type != "" {
				fmt.Printf(" [%s]", lintErr.Type)
			}
			fmt.Println()
			if lintErr.Suggestion != "" {
				fmt.Printf("  %s\n", lintErr.Suggestion)
			}
			totalErrors++
		}
	}

	fmt.Println()
	fmt.Printf("Summary: %d file(s), %d error(s)\n", len(results), totalErrors)

	if totalErrors > 0 {
		return cli.NewCommandError("lint", fmt.Errorf("%d file(s) failed validation", countInvalid(results)))
	}

	return nil
}

func countInvalid(results []LintResult) int {
	n := 0
	for _, result := range results {
		if !result.Valid {
			n++
		}
	}
	return n
}

func outputJSON(results []LintResult) error {
	if err := cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, results); err != nil {
		return err
	}
	if n := countInvalid(results); n > 0 {
		return cli.NewCommandError("lint", fmt.Errorf("%d file(s) failed validation", n))
	}
	return nil
}
