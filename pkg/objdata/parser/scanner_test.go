package parser

import "testing"

func TestScanner_LexInt(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"42", "42", true},
		{"-42", "-42", true},
		{"  7abc", "7", true},
		{"-", "", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := newScanner([]byte(tt.input), "test")
			span, ok := s.lexInt()
			if ok != tt.ok {
				t.Fatalf("lexInt(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && span.Text([]byte(tt.input)) != tt.want {
				t.Errorf("lexInt(%q) = %q, want %q", tt.input, span.Text([]byte(tt.input)), tt.want)
			}
		})
	}
}

func TestScanner_LexFloat(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"1.5", "1.5", true},
		{"-16.299999", "-16.299999", true},
		{"1.", "1.", true}, // trailing point, zero fractional part
		{"1", "", false},   // no point: not a Float
		{".5", "", false},  // no integer digits
		{"-.5", "", false},
		{"-", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := newScanner([]byte(tt.input), "test")
			span, ok := s.lexFloat()
			if ok != tt.ok {
				t.Fatalf("lexFloat(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && span.Text([]byte(tt.input)) != tt.want {
				t.Errorf("lexFloat(%q) = %q, want %q", tt.input, span.Text([]byte(tt.input)), tt.want)
			}
		})
	}
}

func TestScanner_LexFloatDoesNotConsumeOnFailure(t *testing.T) {
	s := newScanner([]byte("42 next"), "test")
	if _, ok := s.lexFloat(); ok {
		t.Fatal("lexFloat matched a pointless integer")
	}
	// The integer must still be lexable afterwards.
	span, ok := s.lexUint()
	if !ok || span.Text(s.src) != "42" {
		t.Errorf("lexUint after failed lexFloat = %q, ok=%v, want \"42\"", span.Text(s.src), ok)
	}
}

func TestScanner_LexPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{`sprite\sys\frozen_0.bmp`, `sprite\sys\frozen_0.bmp`, true},
		{"data/017.wav", "data/017.wav", true},
		{"017.wav", "017.wav", true}, // digit-leading segment is valid
		{"a\\b rest", "a\\b", true},
		{"name: x", "name", true}, // ':' is not a segment char and terminates the path
		{"/abs", "", false},       // no leading segment
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := newScanner([]byte(tt.input), "test")
			span, ok := s.lexPath()
			if ok != tt.ok {
				t.Fatalf("lexPath(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && span.Text(s.src) != tt.want {
				t.Errorf("lexPath(%q) = %q, want %q", tt.input, span.Text(s.src), tt.want)
			}
		})
	}
}

func TestScanner_LexPathTrailingSeparator(t *testing.T) {
	s := newScanner([]byte("sprite/ next"), "test")
	span, ok := s.lexPath()
	if !ok {
		t.Fatal("lexPath failed")
	}
	if got := span.Text(s.src); got != "sprite" {
		t.Errorf("lexPath = %q, want %q (trailing separator excluded)", got, "sprite")
	}
}

func TestScanner_LexObjectName(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Frozen", "Frozen", true},
		{"_hidden-boss.v2", "_hidden-boss.v2", true},
		{"9lives", "", false}, // names may not start with a digit
		{"", "", false},
	}

	for _, tt := range tests {
		s := newScanner([]byte(tt.input), "test")
		span, ok := s.lexObjectName()
		if ok != tt.ok {
			t.Fatalf("lexObjectName(%q) ok = %v, want %v", tt.input, ok, tt.ok)
		}
		if ok && span.Text(s.src) != tt.want {
			t.Errorf("lexObjectName(%q) = %q, want %q", tt.input, span.Text(s.src), tt.want)
		}
	}
}

func TestScanner_LocationAt(t *testing.T) {
	src := []byte("first\nsecond\r\nthird")
	s := newScanner(src, "object.txt")

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{5, 1, 6},  // the '\n' itself belongs to line 1
		{6, 2, 1},  // 's' of "second"
		{14, 3, 1}, // 't' of "third"
		{18, 3, 5},
	}

	for _, tt := range tests {
		loc := s.locationAt(tt.offset)
		if loc.Line != tt.line || loc.Column != tt.column {
			t.Errorf("locationAt(%d) = %d:%d, want %d:%d",
				tt.offset, loc.Line, loc.Column, tt.line, tt.column)
		}
		if loc.File != "object.txt" {
			t.Errorf("locationAt(%d).File = %q, want %q", tt.offset, loc.File, "object.txt")
		}
	}
}

func TestScanner_MatchLiteral(t *testing.T) {
	s := newScanner([]byte("  \r\n<bmp_begin> rest"), "test")
	if !s.matchLiteral("<bmp_begin>") {
		t.Fatal("matchLiteral failed across leading whitespace")
	}
	if s.matchLiteral("<bmp_end>") {
		t.Fatal("matchLiteral matched the wrong literal")
	}
	// A failed match must not consume the input that follows.
	if !s.peekLiteral("rest") {
		t.Error("matchLiteral consumed input on failure")
	}
}

func TestTagTable_LongestKeywordFirst(t *testing.T) {
	tables := []*tagTable{headerTags, spriteDimTags, frameTags,
		bdyTags, bpointTags, cpointTags, itrTags, opointTags, wpointTags}

	for _, table := range tables {
		for i := 1; i < len(table.defs); i++ {
			if len(table.defs[i-1].keyword) < len(table.defs[i].keyword) {
				t.Errorf("table %s: keyword %q sorted before longer %q",
					table.name, table.defs[i-1].keyword, table.defs[i].keyword)
			}
		}
	}
}
