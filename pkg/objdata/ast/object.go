package ast

import "strings"

// ObjectData is the root node for one parsed object data file.
type ObjectData struct {
	Header *Header  // Name, sprite sheets, movement statistics
	Frames []*Frame // Animation frames in source order

	// Source tracking
	SourceFile string   // Name the caller supplied for the buffer
	Location   Location // Location of the opening header literal
}

// GetFrame returns the frame with the given number, or nil if not found.
func (o *ObjectData) GetFrame(number uint32) *Frame {
	for _, frame := range o.Frames {
		if frame.Number == number {
			return frame
		}
	}
	return nil
}

// HasFrame returns true if the object has a frame with the given number.
func (o *ObjectData) HasFrame(number uint32) bool {
	return o.GetFrame(number) != nil
}

// FrameCount returns the number of frames in the object.
func (o *ObjectData) FrameCount() int {
	return len(o.Frames)
}

// Header describes the object itself: identity, sprite sheets, and
// movement statistics. Every statistic is optional; a nil pointer means
// the tag never appeared in the source.
type Header struct {
	Name  string // Object name, e.g. "Frozen"
	Head  *Path  // Portrait sprite shown in character selection
	Small *Path  // Small portrait shown in the in-game HUD

	// Sprite sheets in source order. Object files may reference more
	// than one sheet; each descriptor is complete on its own.
	SpriteFiles []*SpriteFile

	WalkingFrameRate *uint32
	WalkingSpeed     *float64
	WalkingSpeedZ    *float64
	RunningFrameRate *uint32
	RunningSpeed     *float64
	RunningSpeedZ    *float64

	HeavyWalkingSpeed  *float64
	HeavyWalkingSpeedZ *float64
	HeavyRunningSpeed  *float64
	HeavyRunningSpeedZ *float64

	JumpHeight     *float64
	JumpDistance   *float64
	JumpDistanceZ  *float64
	DashHeight     *float64
	DashDistance   *float64
	DashDistanceZ  *float64
	RowingHeight   *float64
	RowingDistance *float64

	Location Location
}

// SpriteFile describes one sprite sheet: the image path and its grid
// dimensions. All five fields are required; the parser rejects a
// partial descriptor.
type SpriteFile struct {
	Path *Path  // Image file path
	W    uint32 // Cell width in pixels
	H    uint32 // Cell height in pixels
	Row  uint32 // Number of rows in the sheet
	Col  uint32 // Number of columns in the sheet

	Location Location
}

// CellCount returns the number of sprite cells on the sheet.
func (s *SpriteFile) CellCount() uint32 {
	return s.Row * s.Col
}

// Path is a file path as written in the data file: a non-empty ordered
// list of segments plus the separator character actually used. The
// separator is preserved for round-trip fidelity.
type Path struct {
	Segments  []string
	Separator byte // '/' or '\\'; '/' when the path has one segment
}

// String joins the segments with the separator used in the source.
func (p Path) String() string {
	sep := p.Separator
	if sep == 0 {
		sep = '/'
	}
	return strings.Join(p.Segments, string(sep))
}

// Base returns the last segment of the path.
func (p Path) Base() string {
	if len(p.Segments) == 0 {
		return ""
	}
	return p.Segments[len(p.Segments)-1]
}
