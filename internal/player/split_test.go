package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPOSIX(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{`a b  c`, []string{"a", "b", "c"}},
		{`"a b" c`, []string{"a b", "c"}},
		{`a\ b`, []string{"a b"}},
		{`'a "b"' c`, []string{`a "b"`, "c"}},
		{`"a \"b\""`, []string{`a "b"`}},
		{`"a\b"`, []string{`a\b`}},
		{`x"y z"w`, []string{"xy zw"}},
		{`""`, []string{""}},
		{"a \\\nb", []string{"a", "b"}},
		{``, nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := SplitPOSIX(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitPOSIXErrors(t *testing.T) {
	tests := []struct {
		in     string
		offset int
	}{
		{`abc\`, 3},
		{`"abc`, 0},
		{`a 'bc`, 2},
		{`"abc\"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := SplitPOSIX(tt.in)
			require.Error(t, err)
			malformed, ok := err.(*MalformedSpecError)
			require.True(t, ok)
			assert.Equal(t, tt.offset, malformed.Offset)
			assert.Contains(t, err.Error(), tt.in)
		})
	}
}

func TestSplitWindows(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{`c:\Program Files\vlc.exe -`, []string{`c:\Program`, `Files\vlc.exe`, "-"}},
		{`"c:\Program Files\vlc.exe" -`, []string{`c:\Program Files\vlc.exe`, "-"}},
		{`"Poker \"Stars\""`, []string{`Poker "Stars"`}},
		{`a\\\"b`, []string{`a\"b`}},
		{`"a\\" b`, []string{`a\`, "b"}},
		{`a\\b`, []string{`a\\b`}},
		{`""`, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := SplitWindows(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteWindowsRoundTrip(t *testing.T) {
	for _, arg := range []string{
		"plain",
		"with space",
		`has "quotes"`,
		`C:\dir with space\`,
		`trailing\\`,
		`x\"y`,
		"",
	} {
		t.Run(arg, func(t *testing.T) {
			got, err := SplitWindows(quoteWindows(arg, false))
			require.NoError(t, err)
			assert.Equal(t, []string{arg}, got)
		})
	}

	assert.Equal(t, "plain", quoteWindows("plain", false))
	assert.Equal(t, `"plain"`, quoteWindows("plain", true))
}
