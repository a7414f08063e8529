package parser

import (
	"fmt"

	"lf2-hq/datafile/pkg/objdata/ast"
	oderrors "lf2-hq/datafile/pkg/objdata/errors"
)

// Parser parses object data buffers into the typed model. Parsing one
// buffer is a synchronous, side-effect-free computation; a single
// Parser may be shared by any number of goroutines.
type Parser struct {
	maxInputSize int // Maximum input size in bytes (default: 16MB)
}

// NewParser creates a new parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		maxInputSize: 16 * 1024 * 1024, // 16MB
	}
}

// WithMaxInputSize sets the maximum input size limit.
func (p *Parser) WithMaxInputSize(size int) *Parser {
	p.maxInputSize = size
	return p
}

// Parse parses one object data buffer and returns the typed model.
// sourceName names the buffer in error locations; it is typically the
// file path the caller read the buffer from. The first error of any
// kind aborts the parse; there is no partial result alongside an error.
func (p *Parser) Parse(data []byte, sourceName string) (*ast.ObjectData, error) {
	tree, s, err := p.parseTree(data, sourceName)
	if err != nil {
		return nil, err
	}

	object, buildErr := newBuilder(s).buildObject(tree, sourceName)
	if buildErr != nil {
		return nil, buildErr
	}
	return object, nil
}

// ParseTree parses one buffer into the raw parse tree without semantic
// mapping. The tree is a pure structural capture: nodes carry rule
// identity, byte spans, and children in source order. It is useful for
// tooling that inspects source structure directly.
func (p *Parser) ParseTree(data []byte, sourceName string) (*Node, error) {
	tree, _, err := p.parseTree(data, sourceName)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

func (p *Parser) parseTree(data []byte, sourceName string) (*Node, *scanner, error) {
	if len(data) > p.maxInputSize {
		return nil, nil, &oderrors.Error{
			Type:    oderrors.ErrorTypeIO,
			Message: fmt.Sprintf("input size %d exceeds maximum %d bytes", len(data), p.maxInputSize),
			Location: ast.Location{
				File: sourceName,
			},
		}
	}

	s := newScanner(data, sourceName)
	tree, err := (&structParser{s: s}).parseObject()
	if err != nil {
		return nil, nil, err
	}
	return tree, s, nil
}
