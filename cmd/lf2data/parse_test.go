package main

import (
	"testing"

	"lf2-hq/datafile/pkg/objdata"
)

func TestSummarize(t *testing.T) {
	obj, err := objdata.ParseFile("testdata/valid.txt")
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}

	parseFlags.frames = false
	summary := summarize("testdata/valid.txt", obj)

	if summary.Object != "Stick" {
		t.Errorf("Object = %q, want Stick", summary.Object)
	}
	if summary.FrameCount != 2 {
		t.Errorf("FrameCount = %d, want 2", summary.FrameCount)
	}
	if len(summary.SpriteFiles) != 1 {
		t.Fatalf("got %d sprite files, want 1", len(summary.SpriteFiles))
	}
	if summary.SpriteFiles[0].Cells != 16 {
		t.Errorf("Cells = %d, want 16", summary.SpriteFiles[0].Cells)
	}
	if len(summary.Frames) != 0 {
		t.Errorf("frames should be omitted without --frames, got %d", len(summary.Frames))
	}
}

func TestSummarizeWithFrames(t *testing.T) {
	obj, err := objdata.ParseFile("testdata/valid.txt")
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}

	parseFlags.frames = true
	defer func() { parseFlags.frames = false }()
	summary := summarize("testdata/valid.txt", obj)

	if len(summary.Frames) != 2 {
		t.Fatalf("got %d frame summaries, want 2", len(summary.Frames))
	}
	if summary.Frames[0].Name != "in_the_sky" {
		t.Errorf("frame 0 name = %q, want in_the_sky", summary.Frames[0].Name)
	}
	if summary.Frames[0].Elements != 2 {
		t.Errorf("frame 0 elements = %d, want 2", summary.Frames[0].Elements)
	}
}

func TestParseObjectInvalidFile(t *testing.T) {
	parseFlags.format = "text"
	if err := parseObject(parseCmd, []string{"testdata/invalid.txt"}); err == nil {
		t.Error("parseObject() with invalid file should return error")
	}
}
