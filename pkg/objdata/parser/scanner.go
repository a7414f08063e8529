package parser

import (
	"sort"

	"lf2-hq/datafile/pkg/objdata/ast"
)

// scanner is a byte-offset scanner over the input buffer. Whitespace
// (space, tab, CR, LF) is insignificant between tokens and is skipped
// explicitly by the grammar code before every match.
type scanner struct {
	src        []byte
	pos        int
	sourceName string
	lineStarts []int // byte offset of the first character of each line
}

func newScanner(src []byte, sourceName string) *scanner {
	s := &scanner{
		src:        src,
		sourceName: sourceName,
	}
	s.indexLines()
	return s
}

// indexLines records the byte offset of every line start so that
// locations can be derived from offsets without re-scanning.
func (s *scanner) indexLines() {
	s.lineStarts = append(s.lineStarts, 0)
	for i, b := range s.src {
		if b == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
}

// locationAt derives the 1-based line and column for a byte offset.
func (s *scanner) locationAt(offset int) ast.Location {
	if offset > len(s.src) {
		offset = len(s.src)
	}
	line := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	})
	// line is now the 1-based line number; lineStarts[line-1] <= offset
	col := offset - s.lineStarts[line-1] + 1
	return ast.Location{
		File:   s.sourceName,
		Line:   line,
		Column: col,
		Offset: offset,
	}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

// matchLiteral consumes lit if it appears at the current position.
// Leading whitespace is skipped first; the position is unchanged when
// the literal does not match.
func (s *scanner) matchLiteral(lit string) bool {
	s.skipSpace()
	if s.pos+len(lit) > len(s.src) {
		return false
	}
	if string(s.src[s.pos:s.pos+len(lit)]) != lit {
		return false
	}
	s.pos += len(lit)
	return true
}

// peekLiteral reports whether lit appears at the current position
// without consuming it.
func (s *scanner) peekLiteral(lit string) bool {
	s.skipSpace()
	if s.pos+len(lit) > len(s.src) {
		return false
	}
	return string(s.src[s.pos:s.pos+len(lit)]) == lit
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isSegmentChar reports whether b may appear in a path segment, an
// object name, or a frame label: alphanumerics plus '_', '-', '.'.
func isSegmentChar(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '_' || b == '-' || b == '.'
}

// lexUint scans one or more digits. It returns the token span and
// false when no digit is present.
func (s *scanner) lexUint() (ast.Span, bool) {
	s.skipSpace()
	start := s.pos
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return ast.Span{}, false
	}
	return ast.Span{Start: start, End: s.pos}, true
}

// lexInt scans an optional leading '-' followed by one or more digits.
func (s *scanner) lexInt() (ast.Span, bool) {
	s.skipSpace()
	start := s.pos
	p := s.pos
	if p < len(s.src) && s.src[p] == '-' {
		p++
	}
	digits := p
	for p < len(s.src) && isDigit(s.src[p]) {
		p++
	}
	if p == digits {
		return ast.Span{}, false
	}
	s.pos = p
	return ast.Span{Start: start, End: p}, true
}

// lexFloat scans an optional '-', one or more integer digits, a literal
// '.', and zero or more fractional digits. A trailing point with no
// fractional digits is valid and denotes a zero fractional part. An
// integer without a point does not match.
func (s *scanner) lexFloat() (ast.Span, bool) {
	s.skipSpace()
	start := s.pos
	p := s.pos
	if p < len(s.src) && s.src[p] == '-' {
		p++
	}
	digits := p
	for p < len(s.src) && isDigit(s.src[p]) {
		p++
	}
	if p == digits {
		return ast.Span{}, false
	}
	if p >= len(s.src) || s.src[p] != '.' {
		return ast.Span{}, false
	}
	p++
	for p < len(s.src) && isDigit(s.src[p]) {
		p++
	}
	s.pos = p
	return ast.Span{Start: start, End: p}, true
}

// lexPath scans one or more segments separated by '/' or '\'. Segments
// use the loose grammar: any segment character may start a segment, so
// filenames that begin with digits are accepted.
func (s *scanner) lexPath() (ast.Span, bool) {
	s.skipSpace()
	start := s.pos
	p := s.pos

	segStart := p
	for p < len(s.src) && isSegmentChar(s.src[p]) {
		p++
	}
	if p == segStart {
		return ast.Span{}, false
	}

	for p < len(s.src) && (s.src[p] == '/' || s.src[p] == '\\') {
		next := p + 1
		segStart = next
		for next < len(s.src) && isSegmentChar(s.src[next]) {
			next++
		}
		if next == segStart {
			// Trailing separator is not part of the path.
			break
		}
		p = next
	}

	s.pos = p
	return ast.Span{Start: start, End: p}, true
}

// lexObjectName scans a name token: a letter or symbol character
// ('_', '-', '.') followed by any number of segment characters.
func (s *scanner) lexObjectName() (ast.Span, bool) {
	s.skipSpace()
	start := s.pos
	p := s.pos
	if p >= len(s.src) || !(isLetter(s.src[p]) || s.src[p] == '_' || s.src[p] == '-' || s.src[p] == '.') {
		return ast.Span{}, false
	}
	p++
	for p < len(s.src) && isSegmentChar(s.src[p]) {
		p++
	}
	s.pos = p
	return ast.Span{Start: start, End: p}, true
}

// lexSegment scans a single loose path segment, used for frame labels.
func (s *scanner) lexSegment() (ast.Span, bool) {
	s.skipSpace()
	start := s.pos
	for s.pos < len(s.src) && isSegmentChar(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return ast.Span{}, false
	}
	return ast.Span{Start: start, End: s.pos}, true
}

// peekWord returns the run of segment characters at the current
// position without consuming it. Used to build keyword suggestions for
// structural errors.
func (s *scanner) peekWord() string {
	s.skipSpace()
	p := s.pos
	for p < len(s.src) && isSegmentChar(s.src[p]) {
		p++
	}
	return string(s.src[s.pos:p])
}
