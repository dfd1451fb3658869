package dictionary

import (
	"sync"
	"unicode"

	"github.com/wippyai/braille"
	"github.com/wippyai/braille/errors"
)

// Tables holds the raw lookup data of a Dictionary.
type Tables struct {
	Letters         map[rune]braille.DotCode
	Digits          map[rune]braille.DotCode
	CompositeDigits map[rune]braille.DotCode
	Signs           map[rune]braille.DotCode
}

// Len returns the total number of entries.
func (t Tables) Len() int {
	return len(t.Letters) + len(t.Digits) + len(t.CompositeDigits) + len(t.Signs)
}

// Dictionary is an immutable braille.Dictionary. It is safe for concurrent use.
type Dictionary struct {
	letters         map[rune]braille.DotCode
	digits          map[rune]braille.DotCode
	compositeDigits map[rune]braille.DotCode
	signs           map[rune]braille.DotCode
}

var _ braille.Dictionary = (*Dictionary)(nil)

var (
	spanish     *Dictionary
	spanishOnce sync.Once
)

// Spanish returns the shared built-in Spanish dictionary.
func Spanish() *Dictionary {
	spanishOnce.Do(func() {
		d, err := New(spanishTables())
		if err != nil {
			panic("dictionary: invalid built-in table: " + err.Error())
		}
		spanish = d
	})
	return spanish
}

// New builds a dictionary from t, validating every key and dot code. The
// tables are copied.
func New(t Tables) (*Dictionary, error) {
	d := &Dictionary{
		letters:         make(map[rune]braille.DotCode, len(t.Letters)),
		digits:          make(map[rune]braille.DotCode, len(t.Digits)),
		compositeDigits: make(map[rune]braille.DotCode, len(t.CompositeDigits)),
		signs:           make(map[rune]braille.DotCode, len(t.Signs)),
	}
	if err := d.add(t); err != nil {
		return nil, err
	}
	return d, nil
}

// Merge returns a new dictionary with overlay entries replacing or extending
// the receiver's. The receiver is not modified.
func (d *Dictionary) Merge(overlay Tables) (*Dictionary, error) {
	merged, err := New(d.Tables())
	if err != nil {
		return nil, err
	}
	if err := merged.add(overlay); err != nil {
		return nil, err
	}
	return merged, nil
}

// Tables returns a copy of the dictionary contents.
func (d *Dictionary) Tables() Tables {
	return Tables{
		Letters:         copyTable(d.letters),
		Digits:          copyTable(d.digits),
		CompositeDigits: copyTable(d.compositeDigits),
		Signs:           copyTable(d.signs),
	}
}

// Letter implements braille.Dictionary.
func (d *Dictionary) Letter(r rune) (braille.DotCode, bool) {
	c, ok := d.letters[r]
	return c, ok
}

// Digit implements braille.Dictionary.
func (d *Dictionary) Digit(r rune, composite bool) (braille.DotCode, bool) {
	if composite {
		c, ok := d.compositeDigits[r]
		return c, ok
	}
	c, ok := d.digits[r]
	return c, ok
}

// Sign implements braille.Dictionary.
func (d *Dictionary) Sign(r rune) (braille.DotCode, bool) {
	c, ok := d.signs[r]
	return c, ok
}

func (d *Dictionary) add(t Tables) error {
	for r, code := range t.Letters {
		if !braille.IsLetter(r) || unicode.IsUpper(r) {
			return errors.InvalidData(errors.PhaseLoad, []string{"letters", string(r)}, "key must be a lowercase letter")
		}
		if err := put(d.letters, "letters", r, code); err != nil {
			return err
		}
	}
	for r, code := range t.Digits {
		if !braille.IsDigit(r) {
			return errors.InvalidData(errors.PhaseLoad, []string{"digits", string(r)}, "key must be a digit 0-9")
		}
		if err := put(d.digits, "digits", r, code); err != nil {
			return err
		}
	}
	for r, code := range t.CompositeDigits {
		if !braille.IsDigit(r) {
			return errors.InvalidData(errors.PhaseLoad, []string{"composite_digits", string(r)}, "key must be a digit 0-9")
		}
		if err := put(d.compositeDigits, "composite_digits", r, code); err != nil {
			return err
		}
	}
	for r, code := range t.Signs {
		if err := put(d.signs, "signs", r, code); err != nil {
			return err
		}
	}
	return nil
}

func put(table map[rune]braille.DotCode, section string, r rune, code braille.DotCode) error {
	if _, err := braille.ParseDotCode(string(code)); err != nil {
		return errors.New(errors.PhaseLoad, errors.KindMalformedCell).
			Path(section, string(r)).
			Token(string(code)).
			Value(r).
			Detail("invalid dot code for %q", r).
			Cause(err).
			Build()
	}
	table[r] = code
	return nil
}

func copyTable(m map[rune]braille.DotCode) map[rune]braille.DotCode {
	out := make(map[rune]braille.DotCode, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
