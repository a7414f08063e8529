package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"lf2-hq/datafile/pkg/catalog"
	"lf2-hq/datafile/pkg/cli"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and maintain the object catalog",
	Long: `Inspect and maintain the catalog of parsed object data files.

The catalog stores one record per source file: the object name, frame
count, checksum, and parse timestamps. Catalog commands work against the
backend named in the configuration; records only survive between
invocations with the sqlite backend.`,
}

var catalogListFlags struct {
	format string
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog records",
	Long: `List every catalog record, ordered by file path.

Examples:
  lf2data catalog list
  lf2data catalog list --format json
  lf2data catalog list --format csv`,
	RunE: listCatalog,
}

var catalogCleanupFlags struct {
	olderThan time.Duration
}

var catalogCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove stale catalog records",
	Long: `Remove catalog records not refreshed within the retention window.

Examples:
  # Remove records older than 30 days
  lf2data catalog cleanup --older-than 720h`,
	RunE: cleanupCatalog,
}

var catalogDeleteCmd = &cobra.Command{
	Use:   "delete <file>",
	Short: "Delete one catalog record",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteCatalogRecord,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogCleanupCmd)
	catalogCmd.AddCommand(catalogDeleteCmd)

	catalogListCmd.Flags().StringVar(&catalogListFlags.format, "format", "text", "output format: text, json, csv")
	catalogCleanupCmd.Flags().DurationVar(&catalogCleanupFlags.olderThan, "older-than", 30*24*time.Hour, "retention window")
}

func openCatalog(cmd *cobra.Command) (catalog.Backend, error) {
	cfg, err := loadScanConfig(cmd)
	if err != nil {
		return nil, err
	}
	return newCatalogBackend(cfg)
}

// CatalogListing is the printable form of the catalog contents.
type CatalogListing struct {
	Records []ListEntry `json:"records"`
}

// ListEntry is one catalog record in command output.
type ListEntry struct {
	File        string    `json:"file"`
	Object      string    `json:"object"`
	Frames      int       `json:"frames"`
	SpriteFiles int       `json:"sprite_files"`
	Checksum    string    `json:"checksum"`
	ParsedAt    time.Time `json:"parsed_at"`
}

// CSVHeader implements cli.CSVRecorder.
func (l CatalogListing) CSVHeader() []string {
	return []string{"file", "object", "frames", "sprite_files", "checksum", "parsed_at"}
}

// CSVRecords implements cli.CSVRecorder.
func (l CatalogListing) CSVRecords() [][]string {
	rows := make([][]string, 0, len(l.Records))
	for _, entry := range l.Records {
		rows = append(rows, []string{
			entry.File,
			entry.Object,
			strconv.Itoa(entry.Frames),
			strconv.Itoa(entry.SpriteFiles),
			entry.Checksum,
			entry.ParsedAt.Format(time.RFC3339),
		})
	}
	return rows
}

func listCatalog(cmd *cobra.Command, args []string) error {
	backend, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer backend.Close()

	records, err := backend.List(cmd.Context())
	if err != nil {
		return cli.NewCommandError("catalog list", err)
	}

	listing := CatalogListing{Records: make([]ListEntry, 0, len(records))}
	for _, record := range records {
		listing.Records = append(listing.Records, ListEntry{
			File:        record.File,
			Object:      record.ObjectName,
			Frames:      record.FrameCount,
			SpriteFiles: record.SpriteFileCount,
			Checksum:    record.Checksum,
			ParsedAt:    record.ParsedAt,
		})
	}

	switch catalogListFlags.format {
	case "json":
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, listing)
	case "csv":
		return cli.NewFormatter(cli.FormatCSV).FormatTo(os.Stdout, listing)
	default:
		if len(listing.Records) == 0 {
			fmt.Println("catalog is empty")
			return nil
		}
		for _, entry := range listing.Records {
			fmt.Printf("%-40s %-16s %4d frames  parsed %s\n",
				entry.File, entry.Object, entry.Frames,
				entry.ParsedAt.Format(time.RFC3339))
		}
		return nil
	}
}

func cleanupCatalog(cmd *cobra.Command, args []string) error {
	backend, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer backend.Close()

	deleted, err := backend.Cleanup(cmd.Context(), time.Now().Add(-catalogCleanupFlags.olderThan))
	if err != nil {
		return cli.NewCommandError("catalog cleanup", err)
	}

	fmt.Printf("Removed %d stale record(s)\n", deleted)
	return nil
}

func deleteCatalogRecord(cmd *cobra.Command, args []string) error {
	backend, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer backend.Close()

	if err := backend.Delete(cmd.Context(), args[0]); err != nil {
		return cli.NewCommandError("catalog delete", err)
	}

	fmt.Printf("Deleted record for %s\n", args[0])
	return nil
}
