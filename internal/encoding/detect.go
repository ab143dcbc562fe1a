// Package encoding normalises uploaded text files to UTF-8.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset names a source encoding NewUTF8Reader knows how to decode.
type Charset string

const (
	UTF8        Charset = "UTF-8"
	UTF8BOM     Charset = "UTF-8-BOM"
	UTF16LE     Charset = "UTF-16LE"
	UTF16BE     Charset = "UTF-16BE"
	Windows1256 Charset = "windows-1256"
	Windows1252 Charset = "windows-1252"
)

const sniffLen = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detect guesses the charset of a leading sample. BOMs win, then valid
// UTF-8, then samples whose high bytes are mostly Windows-1256 Arabic
// letters. Only the rest goes to chardet, which tells Western text from
// Arabic; every Arabic guess, ISO-8859-6 included, is read as Windows-1256
// since that is what spreadsheets on Arabic Windows write.
func Detect(sample []byte) Charset {
	switch {
	case bytes.HasPrefix(sample, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(sample, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(sample, bomUTF16BE):
		return UTF16BE
	case utf8.Valid(sample):
		return UTF8
	case mostlyArabic(sample):
		return Windows1256
	}

	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		return Windows1256
	}

	switch result.Charset {
	case "ISO-8859-1", "ISO-8859-15", "windows-1252":
		return Windows1252
	}

	return Windows1256
}

// mostlyArabic reports whether at least half of the bytes above 0x7F are
// Arabic letters in Windows-1256. The Latin letters that code page keeps
// for French are not counted.
func mostlyArabic(sample []byte) bool {
	var high, arabic int

	for _, b := range sample {
		if b < 0x80 {
			continue
		}

		high++

		switch {
		case b >= 0xC1 && b <= 0xDF && b != 0xD7,
			b == 0xE1, b >= 0xE3 && b <= 0xE6, b == 0xEC, b == 0xED:
			arabic++
		}
	}

	return high > 0 && arabic*2 >= high
}

func decoder(c Charset) *encoding.Decoder {
	switch c {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case Windows1252:
		return charmap.Windows1252.NewDecoder()
	case Windows1256:
		return charmap.Windows1256.NewDecoder()
	}

	return nil
}

// NewUTF8Reader returns a reader yielding r's content as UTF-8 along with
// the charset it was decoded from.
func NewUTF8Reader(r io.Reader) (io.Reader, Charset, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	sample, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", fmt.Errorf("peek: %w", err)
	}

	charset := Detect(sample)

	switch charset {
	case UTF8:
		return br, charset, nil
	case UTF8BOM:
		_, _ = br.Discard(len(bomUTF8))
		return br, charset, nil
	}

	return transform.NewReader(br, decoder(charset)), charset, nil
}
