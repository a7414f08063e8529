package parser

import (
	"fmt"

	"lf2-hq/datafile/pkg/objdata/ast"
	oderrors "lf2-hq/datafile/pkg/objdata/errors"
)

// Block delimiters.
const (
	litHeaderBegin = "<bmp_begin>"
	litHeaderEnd   = "<bmp_end>"
	litFrameBegin  = "<frame>"
	litFrameEnd    = "<frame_end>"
)

// elementDef describes one of the six element block kinds.
type elementDef struct {
	rule  Rule
	begin string
	end   string
	tags  *tagTable
}

var elementDefs = []elementDef{
	{RuleBdy, "bdy:", "bdy_end:", bdyTags},
	{RuleBPoint, "bpoint:", "bpoint_end:", bpointTags},
	{RuleCPoint, "cpoint:", "cpoint_end:", cpointTags},
	{RuleItr, "itr:", "itr_end:", itrTags},
	{RuleOPoint, "opoint:", "opoint_end:", opointTags},
	{RuleWPoint, "wpoint:", "wpoint_end:", wpointTags},
}

// structParser is the recursive-descent structural parser for one run.
// It consumes the scanner and produces a parse tree; no semantic
// interpretation happens here.
type structParser struct {
	s *scanner
}

// fail builds a structural error at the given offset.
func (p *structParser) fail(offset int, rule Rule, msg string, expected []string) *oderrors.Error {
	err := &oderrors.Error{
		Type:     oderrors.ErrorTypeStructural,
		Message:  msg,
		Rule:     string(rule),
		Location: p.s.locationAt(offset),
		Span:     ast.Span{Start: offset, End: offset},
		Expected: expected,
	}
	if word := p.s.peekWord(); word != "" && len(expected) > 0 {
		err.Suggestion = oderrors.SuggestKeyword(word, expected)
	}
	return oderrors.AddContextToError(err, p.s.src)
}

// keywordAt consumes kw at the current position if it is followed by a
// valid boundary. A keyword may be followed directly by its value
// ("dash_distance1." is the keyword dash_distance and the float 1.),
// so digits, signs, and points are valid boundaries; a letter or
// underscore would extend the keyword into a different identifier and
// does not match. An optional ':' after the keyword is consumed.
func (p *structParser) keywordAt(kw string) bool {
	p.s.skipSpace()
	end := p.s.pos + len(kw)
	if end > len(p.s.src) || string(p.s.src[p.s.pos:end]) != kw {
		return false
	}
	if end < len(p.s.src) {
		next := p.s.src[end]
		if isLetter(next) || next == '_' {
			return false
		}
	}
	p.s.pos = end
	if p.s.pos < len(p.s.src) && p.s.src[p.s.pos] == ':' {
		p.s.pos++
	}
	return true
}

// matchTag matches any tag from the table at the current position. It
// returns (nil, nil) when no keyword of the table matches. Keywords are
// tried longest-first.
func (p *structParser) matchTag(table *tagTable) (*Node, *oderrors.Error) {
	p.s.skipSpace()
	start := p.s.pos

	for _, def := range table.defs {
		if !p.keywordAt(def.keyword) {
			continue
		}

		node := &Node{Rule: RuleTag, Name: def.keyword}

		value, err := p.lexValue(def, table)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, value)

		if def.class == valueIntPair {
			// A second integer is optional: "catchingact: 3 4".
			if span, ok := p.s.lexInt(); ok {
				node.Children = append(node.Children, &Node{Rule: RuleInt, Span: span})
			}
		}

		node.Span = ast.Span{Start: start, End: p.s.pos}
		return node, nil
	}

	return nil, nil
}

// lexValue lexes the single value of a tag according to its class.
func (p *structParser) lexValue(def tagDef, table *tagTable) (*Node, *oderrors.Error) {
	var (
		span ast.Span
		ok   bool
		rule Rule
	)
	switch def.class {
	case valueInt, valueIntPair:
		span, ok = p.s.lexInt()
		rule = RuleInt
	case valueUint:
		span, ok = p.s.lexUint()
		rule = RuleUint
	case valueFloat:
		span, ok = p.s.lexFloat()
		rule = RuleFloat
	case valuePath:
		span, ok = p.s.lexPath()
		rule = RulePath
	case valueObjectName:
		span, ok = p.s.lexObjectName()
		rule = RuleObjectName
	}
	if !ok {
		return nil, p.fail(p.s.pos, Rule(table.name),
			fmt.Sprintf("malformed %s value for tag %q", def.class, def.keyword),
			[]string{def.class.String()})
	}
	return &Node{Rule: rule, Span: span}, nil
}

// parseObject parses the whole buffer: Header, zero or more Frames, and
// tolerated trailing bytes.
func (p *structParser) parseObject() (*Node, *oderrors.Error) {
	p.s.skipSpace()
	start := p.s.pos

	if !p.s.matchLiteral(litHeaderBegin) {
		return nil, p.fail(p.s.pos, RuleObject,
			fmt.Sprintf("expected %q at start of object data", litHeaderBegin),
			[]string{litHeaderBegin})
	}

	header, err := p.parseHeader(start)
	if err != nil {
		return nil, err
	}

	object := &Node{Rule: RuleObject, Children: []*Node{header}}

	for {
		p.s.skipSpace()
		frameStart := p.s.pos
		if !p.s.matchLiteral(litFrameBegin) {
			break
		}
		frame, err := p.parseFrame(frameStart)
		if err != nil {
			return nil, err
		}
		object.Children = append(object.Children, frame)
	}

	// Anything after the last frame is tolerated for forward
	// compatibility and deliberately ignored.
	object.Span = ast.Span{Start: start, End: p.s.pos}
	return object, nil
}

// parseHeader parses the header body after "<bmp_begin>" was consumed.
func (p *structParser) parseHeader(start int) (*Node, *oderrors.Error) {
	header := &Node{Rule: RuleHeader}

	for {
		if p.s.matchLiteral(litHeaderEnd) {
			break
		}

		p.s.skipSpace()
		if p.s.eof() {
			return nil, p.fail(p.s.pos, RuleHeader,
				fmt.Sprintf("expected %q before end of input", litHeaderEnd),
				[]string{litHeaderEnd})
		}

		if p.peekKeyword("file") {
			sprite, err := p.parseSpriteFile()
			if err != nil {
				return nil, err
			}
			header.Children = append(header.Children, sprite)
			continue
		}

		tag, err := p.matchTag(headerTags)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			expected := append([]string{litHeaderEnd, "file"}, headerTags.keywords()...)
			return nil, p.fail(p.s.pos, RuleHeader, "unexpected input in header block", expected)
		}
		header.Children = append(header.Children, tag)
	}

	header.Span = ast.Span{Start: start, End: p.s.pos}
	return header, nil
}

// peekKeyword reports whether kw (with the keyword boundary rules)
// appears at the current position, without consuming it.
func (p *structParser) peekKeyword(kw string) bool {
	save := p.s.pos
	ok := p.keywordAt(kw)
	p.s.pos = save
	return ok
}

// parseSpriteFile parses one sprite descriptor: the "file" tag with an
// optional parenthesized cell range (as written in later data files,
// e.g. "file(0-69):"), the image path, and the dimension tags. The
// dimension tags are accepted in any order; completeness is checked by
// the semantic mapper.
func (p *structParser) parseSpriteFile() (*Node, *oderrors.Error) {
	p.s.skipSpace()
	start := p.s.pos

	// Consume "file", the optional "(lo-hi)" range, and the optional ':'.
	p.s.pos += len("file")
	if p.s.pos < len(p.s.src) && p.s.src[p.s.pos] == '(' {
		p.s.pos++
		for p.s.pos < len(p.s.src) && (isDigit(p.s.src[p.s.pos]) || p.s.src[p.s.pos] == '-') {
			p.s.pos++
		}
		if p.s.pos >= len(p.s.src) || p.s.src[p.s.pos] != ')' {
			return nil, p.fail(p.s.pos, RuleSpriteFile,
				"malformed sprite cell range after \"file(\"", []string{")"})
		}
		p.s.pos++
	}
	if p.s.pos < len(p.s.src) && p.s.src[p.s.pos] == ':' {
		p.s.pos++
	}

	sprite := &Node{Rule: RuleSpriteFile}

	span, ok := p.s.lexPath()
	if !ok {
		return nil, p.fail(p.s.pos, RuleSpriteFile,
			"malformed sprite file path", []string{"Path"})
	}
	sprite.Children = append(sprite.Children, &Node{Rule: RulePath, Span: span})

	for {
		tag, err := p.matchTag(spriteDimTags)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			break
		}
		sprite.Children = append(sprite.Children, tag)
	}

	sprite.Span = ast.Span{Start: start, End: p.s.pos}
	return sprite, nil
}

// parseFrame parses one frame after "<frame>" was consumed: the frame
// number, the frame label, then any interleaving of frame tags and
// elements, terminated by "<frame_end>".
func (p *structParser) parseFrame(start int) (*Node, *oderrors.Error) {
	frame := &Node{Rule: RuleFrame}

	span, ok := p.s.lexUint()
	if !ok {
		return nil, p.fail(p.s.pos, RuleFrame,
			"expected frame number after \"<frame>\"", []string{"Uint"})
	}
	frame.Children = append(frame.Children, &Node{Rule: RuleFrameNumber, Span: span})

	span, ok = p.s.lexSegment()
	if !ok {
		return nil, p.fail(p.s.pos, RuleFrame,
			"expected frame name after frame number", []string{"FrameName"})
	}
	frame.Children = append(frame.Children, &Node{Rule: RuleFrameName, Span: span})

	for {
		if p.s.matchLiteral(litFrameEnd) {
			break
		}

		p.s.skipSpace()
		if p.s.eof() {
			return nil, p.fail(p.s.pos, RuleFrame,
				fmt.Sprintf("expected %q before end of input", litFrameEnd),
				[]string{litFrameEnd})
		}

		element, err := p.matchElement()
		if err != nil {
			return nil, err
		}
		if element != nil {
			frame.Children = append(frame.Children, element)
			continue
		}

		tag, err := p.matchTag(frameTags)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			expected := []string{litFrameEnd}
			for _, def := range elementDefs {
				expected = append(expected, def.begin)
			}
			expected = append(expected, frameTags.keywords()...)
			return nil, p.fail(p.s.pos, RuleFrame, "unexpected input in frame block", expected)
		}
		frame.Children = append(frame.Children, tag)
	}

	frame.Span = ast.Span{Start: start, End: p.s.pos}
	return frame, nil
}

// matchElement matches any of the six element blocks at the current
// position, returning (nil, nil) when none begins here.
func (p *structParser) matchElement() (*Node, *oderrors.Error) {
	for _, def := range elementDefs {
		p.s.skipSpace()
		start := p.s.pos
		if !p.s.matchLiteral(def.begin) {
			continue
		}

		element := &Node{Rule: def.rule}
		for {
			if p.s.matchLiteral(def.end) {
				break
			}

			p.s.skipSpace()
			if p.s.eof() {
				return nil, p.fail(p.s.pos, def.rule,
					fmt.Sprintf("expected %q before end of input", def.end),
					[]string{def.end})
			}

			tag, err := p.matchTag(def.tags)
			if err != nil {
				return nil, err
			}
			if tag == nil {
				expected := append([]string{def.end}, def.tags.keywords()...)
				return nil, p.fail(p.s.pos, def.rule,
					fmt.Sprintf("unexpected input in %s block", def.begin), expected)
			}
			element.Children = append(element.Children, tag)
		}

		element.Span = ast.Span{Start: start, End: p.s.pos}
		return element, nil
	}

	return nil, nil
}
