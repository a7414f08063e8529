// Package objdata provides parsing for LF2 object data files.
//
// Object data is a line-oriented text format describing one 2D
// fighting-game entity: its sprite sheets, movement statistics, and an
// ordered sequence of animation frames, each containing hit-box,
// attack, and spawn sub-blocks.
//
// # Architecture
//
// The package is organized into subpackages:
//
// - ast: typed immutable model for parsed objects
// - parser: structural parsing and semantic mapping
// - errors: rich error values with location and expected-token context
//
// # Basic Usage
//
// Parse a file:
//
//	object, err := objdata.ParseFile("data/frozen.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Object:", object.Header.Name)
//	fmt.Println("Frames:", object.FrameCount())
//
// Parse a buffer supplied by another collaborator:
//
//	object, err := objdata.Parse(data, "memory://frozen")
//
// # Error Handling
//
// The first error aborts the parse; there is never a partial model
// alongside an error. Errors are *errors.Error values:
//
//	if err != nil {
//	    var parseErr *oderrors.Error
//	    if stderrors.As(err, &parseErr) {
//	        fmt.Println(parseErr.Error()) // multi-line, with context
//	        fmt.Println(parseErr.OneLine())
//	    }
//	}
//
// # Concurrency
//
// Parsing is a pure function of its input buffer. Independent buffers
// may be parsed fully in parallel with no coordination; pkg/loader
// builds a worker pool on exactly this property.
package objdata
