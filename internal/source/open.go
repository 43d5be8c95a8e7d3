package source

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	utf8BOM0, utf8BOM1, utf8BOM2 = 0xEF, 0xBB, 0xBF
)

// Open reads the file at path, decodes it to UTF-8, and strips a leading
// byte-order mark if present (spec.md §6 "Input encoding"). UTF-16 sources
// (detected via their BOM) are transcoded using
// golang.org/x/text/encoding/unicode, the same library the teacher's
// interp/encoding.go reaches for when normalizing source bytes.
func Open(path string) (*Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := decode(data)
	if err != nil {
		return nil, err
	}
	return New(path, text), nil
}

func decode(data []byte) (string, error) {
	switch {
	case len(data) >= 3 && data[0] == utf8BOM0 && data[1] == utf8BOM1 && data[2] == utf8BOM2:
		return string(data[3:]), nil

	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return transcodeUTF16(data, unicode.LittleEndian)

	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return transcodeUTF16(data, unicode.BigEndian)

	default:
		return string(data), nil
	}
}

func transcodeUTF16(data []byte, endian unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	reader := transform.NewReader(bytes.NewReader(data), decoder)
	out, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
