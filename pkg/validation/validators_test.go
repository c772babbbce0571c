package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dayHolder struct {
	Day  string `validate:"required,capitalized"`
	Kind string `validate:"oneof=Primary Friend"`
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Monday", Capitalize("monday"))
	assert.Equal(t, "FRIDAY", Capitalize("fRIDAY"))
	assert.Equal(t, "Saturday", Capitalize("Saturday"))
	assert.Equal(t, "Émile", Capitalize("émile"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "ßamstag", Capitalize("ßamstag"))
}

func TestCapitalizedTag(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(dayHolder{Day: "Thursday", Kind: "Primary"}))
	assert.NoError(t, v.Struct(dayHolder{Day: "2024-06-01", Kind: "Friend"}))
	assert.NoError(t, v.Struct(dayHolder{Day: Capitalize("ßamstag"), Kind: "Friend"}))
	assert.NoError(t, v.Struct(dayHolder{Day: Capitalize("ĸday"), Kind: "Friend"}))

	err := v.Struct(dayHolder{Day: "thursday", Kind: "Primary"})
	require.Error(t, err)
	msgs := FormatValidationErrors(err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "Day: must be capitalized")
}

func TestFormatValidationErrors(t *testing.T) {
	v := New()

	err := v.Struct(dayHolder{Kind: "Cousin"})
	require.Error(t, err)

	msgs := FormatValidationErrors(err)
	assert.Equal(t, []string{
		"Day: is required",
		`Kind: must be one of [Primary Friend], got "Cousin"`,
	}, msgs)
}

func TestFormatValidationErrorsPlainError(t *testing.T) {
	assert.Equal(t, []string{assert.AnError.Error()}, FormatValidationErrors(assert.AnError))
}
