package ast

import "testing"

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{"with file", Location{File: "data/frozen.dat", Line: 12, Column: 5}, "data/frozen.dat:12:5"},
		{"without file", Location{Line: 3, Column: 1}, "<input>:3:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocation_IsValid(t *testing.T) {
	if (Location{}).IsValid() {
		t.Error("zero location reports valid")
	}
	if !(Location{Line: 1, Column: 1}).IsValid() {
		t.Error("1:1 location reports invalid")
	}
}

func TestSpan_Text(t *testing.T) {
	src := []byte("name: Frozen")

	if got := (Span{Start: 6, End: 12}).Text(src); got != "Frozen" {
		t.Errorf("Text() = %q, want %q", got, "Frozen")
	}
	if got := (Span{Start: 6, End: 99}).Text(src); got != "" {
		t.Errorf("out-of-range Text() = %q, want empty", got)
	}
}

func TestObjectData_FrameLookup(t *testing.T) {
	object := &ObjectData{
		Frames: []*Frame{
			{Number: 0, Name: "standing"},
			{Number: 60, Name: "walking"},
		},
	}

	if got := object.GetFrame(60); got == nil || got.Name != "walking" {
		t.Errorf("GetFrame(60) = %v, want walking frame", got)
	}
	if object.GetFrame(7) != nil {
		t.Error("GetFrame(7) found a frame that does not exist")
	}
	if !object.HasFrame(0) {
		t.Error("HasFrame(0) = false, want true")
	}
	if object.FrameCount() != 2 {
		t.Errorf("FrameCount() = %d, want 2", object.FrameCount())
	}
}

func TestFrame_ElementsOfType(t *testing.T) {
	frame := &Frame{
		Elements: []Element{
			&Bdy{},
			&Itr{},
			&Bdy{},
			&WPoint{},
		},
	}

	bodies := frame.ElementsOfType(ElementTypeBdy)
	if len(bodies) != 2 {
		t.Fatalf("len(bodies) = %d, want 2", len(bodies))
	}
	if frame.ElementsOfType(ElementTypeCPoint) != nil {
		t.Error("ElementsOfType returned elements for an absent type")
	}
}

func TestPath_StringAndBase(t *testing.T) {
	tests := []struct {
		name     string
		path     Path
		wantStr  string
		wantBase string
	}{
		{
			"backslash",
			Path{Segments: []string{"sprite", "sys", "frozen_0.bmp"}, Separator: '\\'},
			`sprite\sys\frozen_0.bmp`,
			"frozen_0.bmp",
		},
		{
			"slash",
			Path{Segments: []string{"data", "017.wav"}, Separator: '/'},
			"data/017.wav",
			"017.wav",
		},
		{
			"single segment, zero separator",
			Path{Segments: []string{"icon.bmp"}},
			"icon.bmp",
			"icon.bmp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
			if got := tt.path.Base(); got != tt.wantBase {
				t.Errorf("Base() = %q, want %q", got, tt.wantBase)
			}
		})
	}
}

func TestSpriteFile_CellCount(t *testing.T) {
	sprite := &SpriteFile{W: 79, H: 79, Row: 10, Col: 7}
	if got := sprite.CellCount(); got != 70 {
		t.Errorf("CellCount() = %d, want 70", got)
	}
}
