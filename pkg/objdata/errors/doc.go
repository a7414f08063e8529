// Package errors provides rich error types for object data parsing.
//
// Parsing a buffer fails with exactly one *Error carrying the error
// category, a message, the source location (file, line, column, byte
// offset), and the span of the offending text. Structural errors also
// carry the set of keywords or lexical classes that would have been
// accepted at that position.
//
// Error format:
//
//	[structural] expected "<bmp_end>" before end of input
//	  --> frozen.txt:42:1
//	  |
//	  -> 42 | walking_speed 4.0
//	  |
//	  = expected one of: "<bmp_end>", "name:", "file:", ...
//
// The ErrorList type aggregates errors across multiple files; it is
// used by batch tooling, never by a single parse.
package errors
