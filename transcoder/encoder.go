package transcoder

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/braille"
	"github.com/wippyai/braille/errors"
)

// Unicode Braille Patterns block, six-dot subset
const (
	BlankCell rune = 0x2800
	FullCell  rune = 0x283F
)

// Matrix is a six-dot cell indexed by dot position minus one.
type Matrix [6]bool

// CellMatrix builds the matrix of a single cell token. Runes other than
// '1'-'6' are ignored.
func CellMatrix(token string) Matrix {
	var m Matrix
	for _, r := range token {
		if r >= '1' && r <= '6' {
			m[r-'1'] = true
		}
	}
	return m
}

// Rune returns BlankCell plus 2^i for every raised dot i.
func (m Matrix) Rune() rune {
	v := BlankCell
	for i, raised := range m {
		if raised {
			v += 1 << i
		}
	}
	return v
}

// Dots returns the raised dot positions in ascending order.
func (m Matrix) Dots() []int {
	var dots []int
	for i, raised := range m {
		if raised {
			dots = append(dots, i+1)
		}
	}
	return dots
}

// DotCode returns the canonical cell text, e.g. "125". Empty for a blank cell.
func (m Matrix) DotCode() braille.DotCode {
	var b [6]byte
	n := 0
	for i, raised := range m {
		if raised {
			b[n] = byte('1' + i)
			n++
		}
	}
	return braille.DotCode(b[:n])
}

// EncodeCell returns the Braille pattern of one cell token.
func EncodeCell(token string) rune {
	return CellMatrix(token).Rune()
}

// Encode converts a dot-code string to Unicode Braille: one pattern per space
// separated token, an empty token giving BlankCell, patterns joined by single
// spaces. The empty string is the exception: it encodes to "" rather than a
// single BlankCell, so an empty line stays empty.
func Encode(dotCode string) string {
	if dotCode == "" {
		return ""
	}

	buf := getBuf()
	defer putBuf(buf)

	for i, token := range strings.Split(dotCode, " ") {
		if i > 0 {
			*buf = append(*buf, ' ')
		}
		*buf = utf8.AppendRune(*buf, EncodeCell(token))
	}

	return strings.Trim(string(*buf), " ")
}

// Validate reports the first malformed token of a dot-code string. Empty
// tokens are blank cells and valid. Encode never needs this; it is for
// callers that want to reject bad input instead of dropping dots.
func Validate(dotCode string) error {
	for i, token := range strings.Split(dotCode, " ") {
		var seen Matrix
		for _, r := range token {
			if r < '1' || r > '6' {
				return errors.MalformedCell(errors.PhaseEncode, []string{strconv.Itoa(i)}, token,
					"dot "+strconv.QuoteRune(r)+" out of range")
			}
			if seen[r-'1'] {
				return errors.MalformedCell(errors.PhaseEncode, []string{strconv.Itoa(i)}, token,
					"repeated dot "+string(r))
			}
			seen[r-'1'] = true
		}
	}
	return nil
}
