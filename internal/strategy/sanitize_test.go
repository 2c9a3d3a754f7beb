package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeNeedle(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{name: "clean input", raw: []byte("hello world"), want: "hello world"},
		{name: "surrounding whitespace", raw: []byte("  hello  "), want: "hello"},
		{name: "trailing nul and crlf", raw: []byte("hello\x00\r\n"), want: "hello"},
		{name: "embedded control bytes", raw: []byte("he\x01l\x02lo"), want: "hello"},
		{name: "invalid utf-8 dropped", raw: []byte("\xff\xfehi"), want: "hi"},
		{name: "tabs dropped", raw: []byte("tab\tsep"), want: "tabsep"},
		{name: "embedded newline dropped", raw: []byte("line1\nline2"), want: "line1line2"},
		{name: "unicode kept", raw: []byte("naïve café"), want: "naïve café"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SanitizeNeedle(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSanitizeNeedleEmpty(t *testing.T) {
	for _, raw := range [][]byte{nil, {}, []byte("   "), []byte("\x00\x01\x02"), []byte("\r\n")} {
		_, err := SanitizeNeedle(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}
