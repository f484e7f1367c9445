package bmson

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/bft-labs/crtools/internal/domain"
)

// DefaultFallbackCharset is used for files that are neither UTF-8 nor carry a
// BOM. Most legacy charts were authored on Japanese Windows.
const DefaultFallbackCharset = "shift_jis"

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode converts data to UTF-8 and reports the charset it was read as.
// A byte order mark wins, then valid UTF-8, then the fallback charset.
func Decode(data []byte, fallback string) ([]byte, string, error) {
	if name := bomCharset(data); name != "" {
		out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
		if err != nil {
			return nil, "", fmt.Errorf("decode %s: %w", name, err)
		}
		return out, name, nil
	}

	if utf8.Valid(data) {
		return data, "utf-8", nil
	}

	if fallback == "" {
		fallback = DefaultFallbackCharset
	}
	enc, err := htmlindex.Get(fallback)
	if err != nil {
		return nil, "", fmt.Errorf("%w: unknown charset %q", domain.ErrInvalidConfiguration, fallback)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = fallback
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", name, err)
	}
	return out, name, nil
}

// ValidateCharset checks that name is a charset Decode can fall back to.
func ValidateCharset(name string) error {
	if name == "" {
		return nil
	}
	if _, err := htmlindex.Get(name); err != nil {
		return fmt.Errorf("%w: unknown charset %q", domain.ErrInvalidConfiguration, name)
	}
	return nil
}

func bomCharset(data []byte) string {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return "utf-8"
	case bytes.HasPrefix(data, bomUTF16LE):
		return "utf-16le"
	case bytes.HasPrefix(data, bomUTF16BE):
		return "utf-16be"
	}
	return ""
}
