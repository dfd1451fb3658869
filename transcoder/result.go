package transcoder

import (
	"strings"

	"github.com/wippyai/braille"
	"github.com/wippyai/braille/errors"
)

// Unresolved is a character skipped because the dictionary had no entry.
type Unresolved struct {
	Char   rune
	Class  braille.Class
	Line   int // 1-based
	Column int // 1-based rune offset within the line
}

// Line is the translation of one input line.
type Line struct {
	Text       string
	DotCode    string
	Forward    string
	Mirrored   string
	Unresolved []Unresolved
	Number     int
}

// Result is the translation of a whole text. The aggregate strings join the
// per-line values with '\n'.
type Result struct {
	Text       string
	DotCode    string
	Forward    string
	Mirrored   string
	Lines      []Line
	Unresolved []Unresolved
}

// Err returns an *errors.UnresolvedError when characters were skipped, nil
// otherwise. The translation is complete either way.
func (r *Result) Err() error {
	if len(r.Unresolved) == 0 {
		return nil
	}
	chars := make([]errors.Unresolved, len(r.Unresolved))
	for i, u := range r.Unresolved {
		chars[i] = errors.Unresolved{Char: u.Char, Line: u.Line, Column: u.Column}
	}
	return errors.NewUnresolvedError(chars)
}

func (r *Result) join() {
	dot := make([]string, len(r.Lines))
	fwd := make([]string, len(r.Lines))
	mir := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		dot[i] = l.DotCode
		fwd[i] = l.Forward
		mir[i] = l.Mirrored
	}
	r.DotCode = strings.Join(dot, "\n")
	r.Forward = strings.Join(fwd, "\n")
	r.Mirrored = strings.Join(mir, "\n")
}
