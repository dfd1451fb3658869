package braille

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/wippyai/braille/errors"
)

// DotCode is the textual form of one or more Braille cells. Each cell is the
// concatenation of its raised dot positions (1-6) and cells are separated by a
// single space, e.g. "46 125".
type DotCode string

// Cells returns the space separated cells of c.
func (c DotCode) Cells() []string {
	if c == "" {
		return nil
	}
	return strings.Split(string(c), " ")
}

// ParseDotCode validates s as a dot code. Every cell must be non-empty, hold
// only digits 1-6 and name each dot at most once.
func ParseDotCode(s string) (DotCode, error) {
	if s == "" {
		return "", errors.InvalidInput(errors.PhaseValidate, "empty dot code")
	}
	for i, cell := range strings.Split(s, " ") {
		if err := validateCell(cell); err != nil {
			err.Path = []string{strconv.Itoa(i)}
			return "", err
		}
	}
	return DotCode(s), nil
}

func validateCell(cell string) *errors.Error {
	if cell == "" {
		return errors.MalformedCell(errors.PhaseValidate, nil, cell, "empty cell")
	}
	var seen [7]bool
	for _, r := range cell {
		if r < '1' || r > '6' {
			return errors.MalformedCell(errors.PhaseValidate, nil, cell, "dot "+strconv.QuoteRune(r)+" out of range")
		}
		d := r - '0'
		if seen[d] {
			return errors.MalformedCell(errors.PhaseValidate, nil, cell, "repeated dot "+string(r))
		}
		seen[d] = true
	}
	return nil
}

// Class is the character class driving which dictionary lookup applies.
type Class int

const (
	ClassUnknown Class = iota
	ClassLetter
	ClassDigit
	ClassWhitespace
	ClassSign
)

func (c Class) String() string {
	switch c {
	case ClassLetter:
		return "letter"
	case ClassDigit:
		return "digit"
	case ClassWhitespace:
		return "whitespace"
	case ClassSign:
		return "sign"
	default:
		return "unknown"
	}
}

// Classify returns the class of r.
func Classify(r rune) Class {
	switch {
	case IsDigit(r):
		return ClassDigit
	case IsLetter(r):
		return ClassLetter
	case unicode.IsSpace(r):
		return ClassWhitespace
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return ClassSign
	default:
		return ClassUnknown
	}
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsLetter reports whether r is an ASCII letter or a Latin-1 letter
// (U+00C0-U+00FF without the multiplication and division signs).
func IsLetter(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 0xC0 && r <= 0xFF:
		return r != 0xD7 && r != 0xF7
	}
	return false
}

// Markers are the reserved dot codes inserted as mode indicators.
type Markers struct {
	CapitalLetter     DotCode
	CapitalWord       DotCode
	NumericPrefix     DotCode
	NumericTerminator DotCode
}

// DefaultMarkers returns the Spanish Braille mode indicators.
func DefaultMarkers() Markers {
	return Markers{
		CapitalLetter:     "46",
		CapitalWord:       "46 46",
		NumericPrefix:     "3456",
		NumericTerminator: "5",
	}
}

// Dictionary maps characters to dot codes. Implementations must be safe for
// concurrent readers.
type Dictionary interface {
	// Letter resolves a lowercase letter.
	Letter(r rune) (DotCode, bool)
	// Digit resolves '0'-'9'. composite selects the variant used inside
	// emails, URLs and tags.
	Digit(r rune, composite bool) (DotCode, bool)
	// Sign resolves punctuation and other symbols.
	Sign(r rune) (DotCode, bool)
}

// Validator classifies whole tokens.
type Validator interface {
	IsEmailLike(token string) bool
	IsURLLike(token string) bool
	IsTagLike(token string) bool
}

// IsComposite reports whether token is email, URL or tag shaped.
func IsComposite(v Validator, token string) bool {
	return v.IsEmailLike(token) || v.IsURLLike(token) || v.IsTagLike(token)
}
