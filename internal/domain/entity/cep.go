package entity

import (
	"strings"
	"unicode"

	"persons/internal/errors"
)

// CEPLength is the number of digits in a normalized Brazilian postal code.
const CEPLength = 8

// ErrMalformedCEP is returned when an input cannot be normalized to an
// 8-digit code. This is an input validation failure, distinct from a
// lookup that finds nothing for a well-formed code.
var ErrMalformedCEP = errors.New("malformed cep: must contain exactly 8 digits")

// CEP is a normalized Brazilian postal code: exactly 8 digits, no formatting.
type CEP string

// NewCEP strips all non-digit characters from raw and validates the result.
// "01001-000" and "01001000" normalize to the same CEP.
func NewCEP(raw string) (CEP, error) {
	var normalized strings.Builder
	normalized.Grow(CEPLength)

	for _, r := range raw {
		if unicode.IsDigit(r) {
			normalized.WriteRune(r)
		}
	}

	if normalized.Len() != CEPLength {
		return "", errors.Wrapf(ErrMalformedCEP, "input %q", raw)
	}

	return CEP(normalized.String()), nil
}

// String returns the normalized 8-digit form.
func (c CEP) String() string {
	return string(c)
}
