package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/aqari/internal/encoding"
)

const sample = "الاسم: برج النخيل، المدينة: الرياض، الحي: العليا\n"

func TestNewUTF8Reader(t *testing.T) {
	legacy, err := charmap.Windows1256.NewEncoder().String(sample)
	require.NoError(t, err)

	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(sample)
	require.NoError(t, err)

	type testCase struct {
		name        string
		input       []byte
		wantCharset encoding.Charset
	}

	tests := []testCase{
		{name: "UTF8", input: []byte(sample), wantCharset: encoding.UTF8},
		{name: "UTF8BOM", input: append([]byte{0xEF, 0xBB, 0xBF}, sample...), wantCharset: encoding.UTF8BOM},
		{name: "UTF16LE", input: []byte(utf16), wantCharset: encoding.UTF16LE},
		{name: "Windows1256", input: []byte(legacy), wantCharset: encoding.Windows1256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, charset, err := encoding.NewUTF8Reader(bytes.NewReader(tt.input))
			require.NoError(t, err)

			if tt.wantCharset != "" {
				assert.Equal(t, tt.wantCharset, charset)
			}

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, sample, string(got))
		})
	}
}

func TestNewUTF8Reader_LargeInput(t *testing.T) {
	input := bytes.Repeat([]byte(sample), 500)

	r, charset, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, encoding.UTF8, charset)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestDetect_Empty(t *testing.T) {
	assert.Equal(t, encoding.UTF8, encoding.Detect(nil))
}

func TestDetect(t *testing.T) {
	arabic, err := charmap.Windows1256.NewEncoder().String(`{"name":"برج الفيصلية"}`)
	require.NoError(t, err)

	type testCase struct {
		name  string
		input []byte
		want  encoding.Charset
	}

	tests := []testCase{
		{name: "ArabicInEnglishJSON", input: []byte(arabic), want: encoding.Windows1256},
		{name: "UTF16BE", input: []byte{0xFE, 0xFF, 0x00, 'a'}, want: encoding.UTF16BE},
		{name: "ASCII", input: []byte("date,amount\n"), want: encoding.UTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encoding.Detect(tt.input))
		})
	}
}
