package transcoder

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wippyai/braille"
)

// lineScanner runs the per-character state machine over one line. It lives
// for a single translateLine call; word-level flags are locals of word.
type lineScanner struct {
	t          *Transcoder
	buf        *[]byte
	unresolved []Unresolved
	line       int
}

func newLineScanner(t *Transcoder, line int) *lineScanner {
	return &lineScanner{t: t, line: line}
}

// scan returns the dot-code string of text. Words are the substrings between
// U+0020 spaces; each word is followed by a separator, so consecutive words
// are parted by an empty cell.
func (s *lineScanner) scan(text string) string {
	s.buf = getBuf()
	defer putBuf(s.buf)

	col := 1
	for _, word := range strings.Split(text, " ") {
		s.word(word, col)
		s.separator()
		col += utf8.RuneCountInString(word) + 1
	}

	return strings.Trim(string(*s.buf), " ")
}

func (s *lineScanner) word(word string, col int) {
	if word == "" {
		return
	}
	runes := []rune(word)
	m := s.t.markers

	capitalWord := isCapitalWord(runes)
	if capitalWord {
		s.emit(m.CapitalWord)
	}

	// Composite status covers the whole word even when only part of it is
	// email, URL or tag shaped.
	composite := braille.IsComposite(s.t.validator, word)
	withinNumber := false

	for i, r := range runes {
		if braille.IsDigit(r) {
			if !withinNumber && !composite {
				s.emit(m.NumericPrefix)
				withinNumber = true
			}
			if code, ok := s.t.dict.Digit(r, composite); ok {
				s.emit(code)
			} else {
				s.unresolve(r, braille.ClassDigit, col+i)
			}
			continue
		}

		class := braille.Classify(r)

		if withinNumber {
			withinNumber = false
			if needsTerminator(runes, i, class) {
				s.emit(m.NumericTerminator)
			}
		}

		switch class {
		case braille.ClassLetter:
			if !capitalWord && unicode.IsUpper(r) {
				s.emit(m.CapitalLetter)
			}
			if code, ok := s.t.dict.Letter(unicode.ToLower(r)); ok {
				s.emit(code)
			} else {
				s.unresolve(r, class, col+i)
			}

		case braille.ClassWhitespace:
			s.separator()

		default:
			sign := r
			if r == '.' && betweenDigits(runes, i) {
				sign = ','
			}
			if code, ok := s.t.dict.Sign(sign); ok {
				s.emit(code)
			} else {
				s.unresolve(r, class, col+i)
			}
		}
	}
}

func (s *lineScanner) emit(code braille.DotCode) {
	if code == "" {
		return
	}
	*s.buf = append(*s.buf, ' ')
	*s.buf = append(*s.buf, code...)
}

func (s *lineScanner) separator() {
	*s.buf = append(*s.buf, ' ')
}

func (s *lineScanner) unresolve(r rune, class braille.Class, col int) {
	s.unresolved = append(s.unresolved, Unresolved{
		Char:   r,
		Class:  class,
		Line:   s.line,
		Column: col,
	})
}

// isCapitalWord reports whether the word takes the capital-word marker: at
// least two letters and no lowercase rune. A lone capital uses the
// capital-letter marker instead.
func isCapitalWord(runes []rune) bool {
	letters := 0
	for _, r := range runes {
		if unicode.IsLower(r) {
			return false
		}
		if braille.IsLetter(r) {
			letters++
		}
	}
	return letters >= 2
}

// needsTerminator decides whether the numeric run that just ended at runes[i]
// is closed with the terminator marker: never before whitespace or when a
// digit follows; at the end of the word only a letter needs it.
func needsTerminator(runes []rune, i int, class braille.Class) bool {
	if class == braille.ClassWhitespace {
		return false
	}
	if i+1 < len(runes) {
		return !braille.IsDigit(runes[i+1])
	}
	return class == braille.ClassLetter
}

func betweenDigits(runes []rune, i int) bool {
	return i > 0 && i+1 < len(runes) && braille.IsDigit(runes[i-1]) && braille.IsDigit(runes[i+1])
}
