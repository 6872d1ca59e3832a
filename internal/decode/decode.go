// Package decode turns an encoded byte stream into UTF-8 text for the CSV reader.
// Every supported encoding keeps ',', '"', CR and LF distinct from the
// fragments of other characters once decoded.
package decode

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const DefaultEncoding = "utf-8"

// BOMs are not interpreted; a leading BOM reaches the reader as U+FEFF.
var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

// Names lists the supported encodings.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewReader wraps r so reads return UTF-8 decoded from the named encoding.
// An empty name means UTF-8, which is passed through untouched.
func NewReader(name string, r io.Reader) (io.Reader, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == DefaultEncoding {
		return r, nil
	}
	enc, ok := encodings[name]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
