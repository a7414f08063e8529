package codec

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	plain := []byte("<bmp_begin>\nname: Frozen\n<bmp_end>\n")

	encoded := Encode(plain)
	if len(encoded) != headerLen+len(plain) {
		t.Fatalf("len(encoded) = %d, want %d", len(encoded), headerLen+len(plain))
	}
	if bytes.Contains(encoded[headerLen:], []byte("<bmp_begin>")) {
		t.Error("encoded body still contains plain text")
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if !bytes.Equal(decoded, plain) {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", decoded, plain)
	}
}

func TestDecodeEmptyBody(t *testing.T) {
	decoded, err := Decode(Encode(nil))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("len(decoded) = %d, want 0", len(decoded))
	}
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode(make([]byte, headerLen-1))
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("Decode() error = %v, want ErrTruncated", err)
	}
}

func TestLooksEncoded(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"plain", []byte("<bmp_begin>\nname: X\n"), false},
		{"plain with leading whitespace", []byte("\r\n  <bmp_begin>"), false},
		{"encoded", Encode([]byte("<bmp_begin>")), true},
		{"short garbage", []byte("abc"), true},
		{"empty", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksEncoded(tt.data); got != tt.want {
				t.Errorf("LooksEncoded() = %v, want %v", got, tt.want)
			}
		})
	}
}
