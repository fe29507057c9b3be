package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{name: "empty", input: "", want: KindBasic},
		{name: "comma", input: "1,2", want: KindBasic},
		{name: "comma and colon", input: "1,2:3", want: KindBasic},
		{name: "single number", input: "42", want: KindBasic},
		{name: "custom two char delimiter", input: "//..\n1", want: KindCustom},
		{name: "custom repeated delimiter", input: "//..\n1..2..3", want: KindCustom},
		{name: "custom at sign", input: "//@\n1@2@3", want: KindCustom},
		{name: "custom semicolon", input: "//;\n1;2;3", want: KindCustom},
		{name: "custom regex star", input: "//*\n1*2", want: KindCustom},
		{name: "custom comma delimiter", input: "//,\n1,2", want: KindCustom},
		{name: "letters", input: "asdf", want: KindInvalid},
		{name: "negative", input: "1,2:-3", want: KindInvalid},
		{name: "trailing delimiter", input: "1,2,", want: KindInvalid},
		{name: "leading delimiter", input: ",1", want: KindInvalid},
		{name: "double delimiter", input: "1,,2", want: KindInvalid},
		{name: "spaces", input: "1, 2", want: KindInvalid},
		{name: "empty custom delimiter", input: "//\n1", want: KindInvalid},
		{name: "custom without numbers", input: "//;\n", want: KindInvalid},
		{name: "custom inconsistent delimiter", input: "//..\n2..30.70", want: KindInvalid},
		{name: "custom dot is not a wildcard", input: "//.\n1x2", want: KindInvalid},
		{name: "custom trailing newline", input: "//;\n1;2\n", want: KindInvalid},
		{name: "custom mixed with default", input: "//;\n1;2,3", want: KindInvalid},
		{name: "header only slashes", input: "//", want: KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.input).Kind())
		})
	}
}

func TestSelect_KeepsInput(t *testing.T) {
	r := Select("//;\n1;2")
	assert.Equal(t, "//;\n1;2", r.Input())
}

func TestSelectOptional(t *testing.T) {
	t.Run("nil selects invalid", func(t *testing.T) {
		r := SelectOptional(nil)
		assert.Equal(t, KindInvalid, r.Kind())

		_, err := r.Evaluate()
		assert.ErrorIs(t, err, ErrNoMatchingRule)
	})

	t.Run("present input delegates to Select", func(t *testing.T) {
		empty := ""
		assert.Equal(t, KindBasic, SelectOptional(&empty).Kind())

		custom := "//;\n1;2"
		assert.Equal(t, KindCustom, SelectOptional(&custom).Kind())
	})
}

func TestSum(t *testing.T) {
	got, err := Sum("1,2:3")
	assert.NoError(t, err)
	assert.Equal(t, int32(6), got)

	_, err = Sum("asdf")
	assert.ErrorIs(t, err, ErrNoMatchingRule)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "basic", KindBasic.String())
	assert.Equal(t, "custom", KindCustom.String())
	assert.Equal(t, "invalid", KindInvalid.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestWithValidator_IgnoresUnknownKindAndNil(t *testing.T) {
	r := Select("1,2", WithValidator(Kind(9), AcceptAll), WithValidator(KindBasic, nil))
	got, err := r.Evaluate()
	assert.NoError(t, err)
	assert.Equal(t, int32(3), got)
}
