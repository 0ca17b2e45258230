package codepage

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Windows code page numbers to x/text encodings.
var windowsCodePages = map[string]encoding.Encoding{
	"cp437":   charmap.CodePage437,
	"cp850":   charmap.CodePage850,
	"cp852":   charmap.CodePage852,
	"cp855":   charmap.CodePage855,
	"cp858":   charmap.CodePage858,
	"cp860":   charmap.CodePage860,
	"cp862":   charmap.CodePage862,
	"cp863":   charmap.CodePage863,
	"cp865":   charmap.CodePage865,
	"cp866":   charmap.CodePage866,
	"cp874":   charmap.Windows874,
	"cp932":   japanese.ShiftJIS,
	"cp936":   simplifiedchinese.GBK,
	"cp949":   korean.EUCKR,
	"cp950":   traditionalchinese.Big5,
	"cp1250":  charmap.Windows1250,
	"cp1251":  charmap.Windows1251,
	"cp1252":  charmap.Windows1252,
	"cp1253":  charmap.Windows1253,
	"cp1254":  charmap.Windows1254,
	"cp1255":  charmap.Windows1255,
	"cp1256":  charmap.Windows1256,
	"cp1257":  charmap.Windows1257,
	"cp1258":  charmap.Windows1258,
	"cp20866": charmap.KOI8R,
	"cp21866": charmap.KOI8U,
	"cp28591": charmap.ISO8859_1,
	"cp28592": charmap.ISO8859_2,
	"cp28595": charmap.ISO8859_5,
	"cp28605": charmap.ISO8859_15,
	"cp54936": simplifiedchinese.GB18030,
	"cp65001": unicode.UTF8,
}

// Codec decodes output written in one code page.
type Codec struct {
	token string
	enc   encoding.Encoding
}

// ForToken builds a Codec for a cp<N> token (or an IANA name). Unknown tokens
// decode as UTF-8.
func ForToken(token string) *Codec {
	token = strings.ToLower(strings.TrimSpace(token))
	return &Codec{token: token, enc: lookup(token)}
}

// Token returns the code page token, e.g. "cp850".
func (c *Codec) Token() string {
	return c.token
}

// Decode converts raw bytes to a UTF-8 string. Bytes that cannot be decoded
// become U+FFFD; Decode never fails.
func (c *Codec) Decode(raw []byte) string {
	out, err := c.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	}
	return strings.ToValidUTF8(string(out), string(utf8.RuneError))
}

func lookup(token string) encoding.Encoding {
	if enc, ok := windowsCodePages[token]; ok {
		return enc
	}
	if enc, err := ianaindex.IANA.Encoding(token); err == nil && enc != nil {
		return enc
	}
	if strings.HasPrefix(token, "cp") {
		if enc, err := ianaindex.IANA.Encoding("windows-" + strings.TrimPrefix(token, "cp")); err == nil && enc != nil {
			return enc
		}
	}
	return unicode.UTF8
}
