// Package codec encodes and decodes LF2 data files.
//
// Shipped .dat files are obfuscated with a caesar cipher: the first 123
// bytes are discardable junk, and every following byte has a byte of a
// fixed well-known key added to it, cycling through the key. Decoding
// strips the junk prefix and subtracts the key; encoding is the exact
// inverse.
//
//	plain, err := codec.Decode(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	object, err := objdata.Parse(plain, "frozen.dat")
//
// Plain-text data files do not need decoding; see codec.LooksEncoded
// for a cheap heuristic.
package codec
