// Package parser parses LF2 object data text into the typed model.
//
// The parser operates in two stages:
//
// 1. Structural parsing: a recursive-descent parser driven by per-block
// tag tables recognizes the nested blocks (header, frames, elements)
// and produces a parse tree of named nodes with byte spans.
//
// 2. Semantic mapping: the mapper walks the tree, converts token text
// into typed values with explicit 32-bit range checks, enforces
// block-level presence rules, and assembles the immutable model.
//
// This two-stage approach enables:
// - Precise error messages (every node carries its source span)
// - A deterministic mapping pass that never re-scans the source
// - Structural tooling on the raw tree via ParseTree
//
// # Keyword matching
//
// Several tag keywords are textual prefixes of others (walking_speed /
// walking_speedz, dash_distance / dash_distancez, ...). Tag tables are
// sorted longest-keyword-first and matching always takes the longest
// keyword that fits, so "walking_speedz:1.5" can never be misread as
// walking_speed followed by stray text. The ':' after a keyword is
// optional: header statistics are traditionally written without it,
// frame and element tags with it.
//
// # Basic Usage
//
//	p := parser.NewParser()
//	object, err := p.Parse(data, "frozen.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Object:", object.Header.Name)
//
// # Error Handling
//
// The first error of any kind aborts the parse of the buffer. Errors
// are *errors.Error values with category, location, and span, plus,
// for structural failures, the set of keywords and lexical classes
// that would have been accepted at the failing position:
//
//	object, err := p.Parse(data, path)
//	if err != nil {
//	    var parseErr *errors.Error
//	    if stderrors.As(err, &parseErr) {
//	        fmt.Println(parseErr.OneLine())
//	    }
//	}
//
// # Forward compatibility
//
// Unrecognized content after the last frame never fails the parse; it
// is tolerated and ignored so that newer data files with trailing
// additions remain loadable.
package parser
