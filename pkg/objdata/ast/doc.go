// Package ast defines the typed in-memory model for parsed LF2 object
// data files.
//
// An object data file describes one game entity: its sprite sheets,
// movement statistics, and an ordered sequence of animation frames.
// Each frame carries scalar directives and an ordered list of elements
// (hit boxes, attack boxes, spawn points, and so on).
//
// The model is immutable by convention: it is assembled once by the
// parser and never mutated afterwards. Optional tags are represented as
// pointer fields; a nil pointer means the tag never appeared in the
// source file. All nodes preserve source location information for
// precise error reporting.
//
// # Core Types
//
// ObjectData: Root node containing the header and all frames
//
// Header: Object name, sprite sheets, and movement statistics
//
// Frame: One named, numbered animation frame
//
// Element: One of six typed sub-blocks (Bdy, BPoint, CPoint, Itr,
// OPoint, WPoint)
//
// Path: A file path split into segments, preserving the separator
// actually written in the source
//
// Location, Span: Source positions (file, line, column, byte offsets)
//
// # Basic Usage
//
// Parse a file and traverse the model:
//
//	object, err := objdata.ParseFile("frozen.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Object:", object.Header.Name)
//	for _, frame := range object.Frames {
//	    fmt.Println("Frame:", frame.Number, frame.Name)
//	    for _, element := range frame.Elements {
//	        fmt.Println("  Element:", element.ElementType())
//	    }
//	}
package ast
