package desktopini

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding is the on-disk encoding of a desktop.ini file.
type Encoding string

const (
	UTF16LE    Encoding = "utf-16le"
	UTF16BE    Encoding = "utf-16be"
	UTF8BOM    Encoding = "utf-8-bom"
	UTF8       Encoding = "utf-8"
	GBK        Encoding = "gbk"
	NoEncoding Encoding = ""
)

// IsUnicode reports whether Explorer can show non-ASCII text from a file
// in this encoding. Only UTF-16 qualifies.
func (e Encoding) IsUnicode() bool {
	return e == UTF16LE || e == UTF16BE
}

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
)

// DetectEncoding sniffs a byte order mark, then checks for valid UTF-8,
// and otherwise assumes the legacy GBK code page.
func DetectEncoding(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8BOM
	case utf8.Valid(data):
		return UTF8
	default:
		return GBK
	}
}

func decoderFor(enc Encoding) encoding.Encoding {
	switch enc {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	case UTF8BOM:
		return unicode.UTF8BOM
	case GBK:
		return simplifiedchinese.GBK
	default:
		return unicode.UTF8
	}
}

// Decode returns the text of data and the encoding it was found in.
func Decode(data []byte) (string, Encoding, error) {
	enc := DetectEncoding(data)
	out, _, err := transform.Bytes(decoderFor(enc).NewDecoder(), data)
	if err != nil {
		return "", enc, fmt.Errorf("decode %s: %w", enc, err)
	}
	return string(out), enc, nil
}

// Encode returns text as UTF-16LE with a byte order mark and CRLF line
// endings, the form Explorer expects.
func Encode(text string) ([]byte, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\n", "\r\n")
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	out, _, err := transform.Bytes(enc, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode utf-16le: %w", err)
	}
	return out, nil
}
