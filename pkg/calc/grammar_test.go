package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCustom(t *testing.T) {
	m, ok := extractCustom("//..\n1..2..3", unsignedNumber)
	require.True(t, ok)
	assert.Equal(t, "..", m.delimiter)
	assert.Equal(t, "1..2..3", m.source)

	_, ok = extractCustom("//..\n1..-2", unsignedNumber)
	assert.False(t, ok)

	m, ok = extractCustom("//..\n1..-2", signedNumber)
	require.True(t, ok)
	assert.Equal(t, "1..-2", m.source)
}

func TestExtractCustom_DelimiterStopsAtFirstNewline(t *testing.T) {
	_, ok := extractCustom("//;\n\n1", unsignedNumber)
	assert.False(t, ok)

	_, ok = extractCustom("//a\nb\n1", unsignedNumber)
	assert.False(t, ok)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		source string
		delim  string
		want   []string
	}{
		{name: "plain", source: "1;2;3", delim: ";", want: []string{"1", "2", "3"}},
		{name: "quoted dot", source: "1.2.3", delim: ".", want: []string{"1", "2", "3"}},
		{name: "trailing empties dropped", source: "2a", delim: "a", want: []string{"2"}},
		{name: "leading empty kept", source: "a2", delim: "a", want: []string{"", "2"}},
		{name: "no separator", source: "12", delim: ";", want: []string{"12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := customMatch{delimiter: tt.delim}
			assert.Equal(t, tt.want, tokenize(tt.source, m.separator()))
		})
	}
}

func TestTokenize_BasicDelimiter(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, tokenize("1,2:3", basicDelimiter))
}

func TestParseTokens(t *testing.T) {
	got, _, err := parseTokens([]string{"1", "-2", "0"})
	require.NoError(t, err)
	assert.Equal(t, []int32{1, -2, 0}, got)

	_, token, err := parseTokens([]string{"1", "x"})
	assert.ErrorIs(t, err, errTokenSyntax)
	assert.Equal(t, "x", token)

	_, token, err = parseTokens([]string{"99999999999"})
	assert.ErrorIs(t, err, errTokenRange)
	assert.Equal(t, "99999999999", token)

	_, _, err = parseTokens([]string{""})
	assert.ErrorIs(t, err, errEmptyToken)
}
