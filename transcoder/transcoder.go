package transcoder

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/wippyai/braille"
	"github.com/wippyai/braille/dictionary"
	"github.com/wippyai/braille/validate"
)

// Options configures transcoder behavior.
type Options struct {
	Dictionary braille.Dictionary
	Validator  braille.Validator
	Markers    braille.Markers
	// Normalize composes decomposed accents (NFC) before classification.
	Normalize bool
}

// DefaultOptions returns the Spanish configuration.
func DefaultOptions() Options {
	return Options{
		Dictionary: dictionary.Spanish(),
		Validator:  validate.New(),
		Markers:    braille.DefaultMarkers(),
		Normalize:  true,
	}
}

// Transcoder converts text to Braille. It holds no mutable state and is safe
// for concurrent use.
type Transcoder struct {
	dict      braille.Dictionary
	validator braille.Validator
	markers   braille.Markers
	normalize bool
}

// New creates a Transcoder. Nil collaborators and empty markers fall back to
// DefaultOptions, field by field for Markers.
func New(opts Options) *Transcoder {
	def := DefaultOptions()
	if opts.Dictionary == nil {
		opts.Dictionary = def.Dictionary
	}
	if opts.Validator == nil {
		opts.Validator = def.Validator
	}
	opts.Markers = fillMarkers(opts.Markers, def.Markers)
	return &Transcoder{
		dict:      opts.Dictionary,
		validator: opts.Validator,
		markers:   opts.Markers,
		normalize: opts.Normalize,
	}
}

func fillMarkers(m, def braille.Markers) braille.Markers {
	if m.CapitalLetter == "" {
		m.CapitalLetter = def.CapitalLetter
	}
	if m.CapitalWord == "" {
		m.CapitalWord = def.CapitalWord
	}
	if m.NumericPrefix == "" {
		m.NumericPrefix = def.NumericPrefix
	}
	if m.NumericTerminator == "" {
		m.NumericTerminator = def.NumericTerminator
	}
	return m
}

// NewWithDefaults creates a Transcoder with DefaultOptions.
func NewWithDefaults() *Transcoder {
	return New(DefaultOptions())
}

// Translate converts every line of text. Lines are separated by '\n'; a
// trailing '\r' on a line is dropped.
func (t *Transcoder) Translate(text string) *Result {
	rawLines := strings.Split(text, "\n")
	res := &Result{
		Text:  text,
		Lines: make([]Line, 0, len(rawLines)),
	}

	for i, raw := range rawLines {
		line := t.translateLine(strings.TrimSuffix(raw, "\r"), i+1)
		res.Lines = append(res.Lines, line)
		res.Unresolved = append(res.Unresolved, line.Unresolved...)
	}
	res.join()

	Logger().Debug("translated text",
		zap.Int("lines", len(res.Lines)),
		zap.Int("unresolved", len(res.Unresolved)),
	)
	return res
}

// TranslateLine converts a single line. Any '\n' in line is treated as
// whitespace inside its word.
func (t *Transcoder) TranslateLine(line string) Line {
	return t.translateLine(line, 1)
}

func (t *Transcoder) translateLine(text string, n int) Line {
	if t.normalize {
		text = norm.NFC.String(text)
	}

	s := newLineScanner(t, n)
	dotCode := s.scan(text)

	line := Line{
		Number:     n,
		Text:       text,
		DotCode:    dotCode,
		Forward:    Encode(dotCode),
		Mirrored:   Encode(MirrorLine(dotCode)),
		Unresolved: s.unresolved,
	}

	if ce := Logger().Check(zap.DebugLevel, "translated line"); ce != nil {
		ce.Write(
			zap.Int("line", n),
			zap.Int("cells", cellCount(dotCode)),
			zap.Int("unresolved", len(line.Unresolved)),
		)
	}
	return line
}

func cellCount(dotCode string) int {
	if dotCode == "" {
		return 0
	}
	return strings.Count(dotCode, " ") + 1
}
