// Package textenc selects the decoder applied to properties files before they
// are parsed.
package textenc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// Encoding names the text encoding assumed for a properties file.
type Encoding int

const (
	// Unspecified reads the file as raw bytes.
	Unspecified Encoding = iota
	UTF8
	UTF16
	UTF32
)

// ErrUnknownEncoding is returned by Parse for unrecognised names.
var ErrUnknownEncoding = errors.New("unknown encoding")

// String returns the canonical name of e.
func (e Encoding) String() string {
	switch e {
	case Unspecified:
		return ""
	case UTF8:
		return "utf-8"
	case UTF16:
		return "utf-16"
	case UTF32:
		return "utf-32"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// Parse maps a name such as "utf-16" or "UTF16" onto an Encoding.
func Parse(name string) (Encoding, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "") {
	case "", "none", "unspecified":
		return Unspecified, nil
	case "utf8":
		return UTF8, nil
	case "utf16":
		return UTF16, nil
	case "utf32":
		return UTF32, nil
	default:
		return Unspecified, fmt.Errorf("%w %q", ErrUnknownEncoding, name)
	}
}

// Decoder returns the decoder for e, or nil when bytes pass through unchanged.
// The Unicode decoders consume a leading byte order mark and default to
// little-endian when none is present.
func (e Encoding) Decoder() *encoding.Decoder {
	switch e {
	case UTF8:
		return unicode.UTF8BOM.NewDecoder()
	case UTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case UTF32:
		return utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewDecoder()
	default:
		return nil
	}
}

// NewReader wraps r so that reads yield UTF-8 text decoded according to e.
func NewReader(r io.Reader, e Encoding) io.Reader {
	dec := e.Decoder()
	if dec == nil {
		return r
	}
	return transform.NewReader(r, dec)
}
