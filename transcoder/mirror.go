package transcoder

import (
	"strings"
	"unicode"
)

// MirrorCell swaps the dot columns of a cell (1↔4, 2↔5, 3↔6). Whitespace is
// stripped and any other rune is kept as is.
func MirrorCell(cell string) string {
	var b strings.Builder
	b.Grow(len(cell))
	for _, r := range cell {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(mirrorDot(r))
	}
	return b.String()
}

func mirrorDot(r rune) rune {
	switch {
	case r >= '1' && r <= '3':
		return r + 3
	case r >= '4' && r <= '6':
		return r - 3
	}
	return r
}

// MirrorLine produces the reverse-side reading of a dot-code string: token
// order reversed and every token mirrored.
func MirrorLine(dotCode string) string {
	if dotCode == "" {
		return ""
	}
	tokens := strings.Split(dotCode, " ")
	out := make([]string, len(tokens))
	for i, token := range tokens {
		out[len(tokens)-1-i] = MirrorCell(token)
	}
	return strings.Join(out, " ")
}
