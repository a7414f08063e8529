package objdata

import (
	"os"
	"path/filepath"
	"strings"

	"lf2-hq/datafile/pkg/codec"
	"lf2-hq/datafile/pkg/objdata/ast"
	oderrors "lf2-hq/datafile/pkg/objdata/errors"
	"lf2-hq/datafile/pkg/objdata/parser"
)

// Parse parses one object data buffer. sourceName names the buffer in
// error locations. The call performs no I/O and is safe to run
// concurrently over independent buffers.
func Parse(data []byte, sourceName string) (*ast.ObjectData, error) {
	return parser.NewParser().Parse(data, sourceName)
}

// ParseFile reads and parses an object data file. Files with the .dat
// extension are decoded with the game's caesar codec before parsing,
// as is any file whose content looks encoded regardless of its name;
// everything else is treated as plain text. File access is the only
// I/O this package ever performs; the parser itself is pure.
func ParseFile(path string) (*ast.ObjectData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oderrors.Error{
			Type:    oderrors.ErrorTypeIO,
			Message: "failed to read file: " + err.Error(),
			Location: ast.Location{
				File: path,
			},
		}
	}

	if strings.EqualFold(filepath.Ext(path), ".dat") || codec.LooksEncoded(data) {
		decoded, err := codec.Decode(data)
		if err != nil {
			return nil, &oderrors.Error{
				Type:    oderrors.ErrorTypeIO,
				Message: "failed to decode data file: " + err.Error(),
				Location: ast.Location{
					File: path,
				},
			}
		}
		data = decoded
	}

	return Parse(data, path)
}
