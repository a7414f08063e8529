package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"lf2-hq/datafile/pkg/cli"
	"lf2-hq/datafile/pkg/objdata"
	"lf2-hq/datafile/pkg/objdata/ast"
)

var parseFlags struct {
	format string
	frames bool
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a single object data file",
	Long: `Parse a single object data file and print a summary of the object.

Encoded .dat files are decoded automatically; any other extension is
read as plain text. On failure the command prints one positioned error
with the offending source line.

Examples:
  # Parse an encoded data file
  lf2data parse data/frozen.dat

  # Parse plain text and list frames
  lf2data parse frozen.txt --frames

  # JSON output
  lf2data parse data/frozen.dat --format json`,
	Args: cobra.ExactArgs(1),
	RunE: parseObject,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseFlags.format, "format", "text", "output format: text, json")
	parseCmd.Flags().BoolVar(&parseFlags.frames, "frames", false, "list every frame")
}

// ParseSummary is the printable outcome of parsing one file.
type ParseSummary struct {
	File        string          `json:"file"`
	Object      string          `json:"object"`
	FrameCount  int             `json:"frame_count"`
	SpriteFiles []SpriteSummary `json:"sprite_files"`
	Frames      []FrameSummary  `json:"frames,omitempty"`
}

// SpriteSummary describes one sprite sheet descriptor.
type SpriteSummary struct {
	Path  string `json:"path"`
	Cells uint32 `json:"cells"`
	W     uint32 `json:"w"`
	H     uint32 `json:"h"`
}

// FrameSummary describes one frame.
type FrameSummary struct {
	Number   uint32 `json:"number"`
	Name     string `json:"name"`
	Elements int    `json:"elements"`
}

func parseObject(cmd *cobra.Command, args []string) error {
	obj, err := objdata.ParseFile(args[0])
	if err != nil {
		return err
	}

	summary := summarize(args[0], obj)
	if parseFlags.format == "json" {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, summary)
	}
	printSummary(summary)
	return nil
}

func summarize(file string, obj *ast.ObjectData) ParseSummary {
	summary := ParseSummary{
		File:       file,
		Object:     obj.Header.Name,
		FrameCount: obj.FrameCount(),
	}
	for _, sf := range obj.Header.SpriteFiles {
		summary.SpriteFiles = append(summary.SpriteFiles, SpriteSummary{
			Path:  sf.Path.String(),
			Cells: sf.CellCount(),
			W:     sf.W,
			H:     sf.H,
		})
	}
	if parseFlags.frames {
		for _, frame := range obj.Frames {
			summary.Frames = append(summary.Frames, FrameSummary{
				Number:   frame.Number,
				Name:     frame.Name,
				Elements: len(frame.Elements),
			})
		}
	}
	return summary
}

func printSummary(summary ParseSummary) {
	fmt.Printf("Object: %s\n", summary.Object)
	fmt.Printf("File:   %s\n", summary.File)
	fmt.Printf("Frames: %d\n", summary.FrameCount)
	fmt.Printf("Sprite sheets: %d\n", len(summary.SpriteFiles))
	for _, sf := range summary.SpriteFiles {
		fmt.Printf("  %s (%dx%d, %d cells)\n", sf.Path, sf.W, sf.H, sf.Cells)
	}
	for _, frame := range summary.Frames {
		fmt.Printf("  frame %3d %-16s %d element(s)\n", frame.Number, frame.Name, frame.Elements)
	}
}
