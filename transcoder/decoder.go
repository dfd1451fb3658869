package transcoder

import "github.com/wippyai/braille"

// DecodeRune recovers the dot code of a six-dot Braille pattern by matrix
// inspection. The blank cell decodes to an empty code.
func DecodeRune(r rune) (braille.DotCode, bool) {
	if r < BlankCell || r > FullCell {
		return "", false
	}
	var m Matrix
	bits := r - BlankCell
	for i := range m {
		m[i] = bits&(1<<i) != 0
	}
	return m.DotCode(), true
}

// Decode returns the dot code of every Braille pattern in s, skipping
// separators and any rune outside the six-dot block.
func Decode(s string) []braille.DotCode {
	var cells []braille.DotCode
	for _, r := range s {
		if code, ok := DecodeRune(r); ok {
			cells = append(cells, code)
		}
	}
	return cells
}
