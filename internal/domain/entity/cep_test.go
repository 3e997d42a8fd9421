package entity

import (
	"testing"

	"persons/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCEP_NormalizesFormattedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain digits", raw: "01001000", want: "01001000"},
		{name: "dash separator", raw: "01001-000", want: "01001000"},
		{name: "dotted prefix", raw: "01.001-000", want: "01001000"},
		{name: "surrounding whitespace", raw: " 01001000 ", want: "01001000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cep, err := NewCEP(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cep.String())
		})
	}
}

func TestNewCEP_FormattedAndUnformattedAgree(t *testing.T) {
	t.Parallel()

	formatted, err := NewCEP("01001-000")
	require.NoError(t, err)

	plain, err := NewCEP("01001000")
	require.NoError(t, err)

	assert.Equal(t, plain, formatted)
}

func TestNewCEP_RejectsMalformedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "too short", raw: "0100100"},
		{name: "too long", raw: "010010001"},
		{name: "letters only", raw: "abcdefgh"},
		{name: "mixed with too few digits", raw: "01001-00x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewCEP(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedCEP))
		})
	}
}
