package codec

import (
	"errors"
	"fmt"
)

// cipherKey is the caesar key the game uses for shipped data files.
const cipherKey = "odBearBecauseHeIsVeryGoodSiuHungIsAGo"

// headerLen is the number of discardable junk bytes at the start of an
// encoded file.
const headerLen = 123

// ErrTruncated is returned when an encoded buffer is shorter than the
// junk header and therefore cannot contain any data.
var ErrTruncated = errors.New("codec: encoded data shorter than header")

// Decode strips the junk header and subtracts the cycling key from
// every remaining byte.
func Decode(encoded []byte) ([]byte, error) {
	if len(encoded) < headerLen {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, len(encoded), headerLen)
	}

	body := encoded[headerLen:]
	decoded := make([]byte, len(body))
	for i, b := range body {
		decoded[i] = b - cipherKey[i%len(cipherKey)]
	}
	return decoded, nil
}

// Encode prepends a junk header and adds the cycling key to every data
// byte, producing a buffer the game itself would accept.
func Encode(plain []byte) []byte {
	encoded := make([]byte, headerLen+len(plain))
	for i := 0; i < headerLen; i++ {
		encoded[i] = cipherKey[i%len(cipherKey)]
	}
	for i, b := range plain {
		encoded[headerLen+i] = b + cipherKey[i%len(cipherKey)]
	}
	return encoded
}

// LooksEncoded reports whether the buffer is likely an encoded data
// file rather than plain text. Plain object data always begins with the
// "<bmp_begin>" literal after optional whitespace; anything else is
// treated as encoded.
func LooksEncoded(data []byte) bool {
	i := 0
	for i < len(data) {
		switch data[i] {
		case ' ', '\t', '\r', '\n':
			i++
			continue
		}
		break
	}
	const begin = "<bmp_begin>"
	if i+len(begin) > len(data) {
		return true
	}
	return string(data[i:i+len(begin)]) != begin
}
