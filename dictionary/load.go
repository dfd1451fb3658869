package dictionary

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/braille"
	"github.com/wippyai/braille/errors"
)

// overlayDoc is the YAML shape of a dictionary overlay:
//
//	letters:          {"ç": "12346"}
//	digits:           {"1": "1"}
//	composite_digits: {"1": "2"}
//	signs:            {"#": "3456"}
type overlayDoc struct {
	Letters         map[string]string `yaml:"letters"`
	Digits          map[string]string `yaml:"digits"`
	CompositeDigits map[string]string `yaml:"composite_digits"`
	Signs           map[string]string `yaml:"signs"`
}

// LoadYAML decodes an overlay document. Keys must be single characters and
// values valid dot codes; the result is ready for Merge or New.
func LoadYAML(r io.Reader) (Tables, error) {
	var doc overlayDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return Tables{}, nil
		}
		return Tables{}, errors.Load("decode overlay", err)
	}

	var t Tables
	var err error
	if t.Letters, err = convert("letters", doc.Letters); err != nil {
		return Tables{}, err
	}
	if t.Digits, err = convert("digits", doc.Digits); err != nil {
		return Tables{}, err
	}
	if t.CompositeDigits, err = convert("composite_digits", doc.CompositeDigits); err != nil {
		return Tables{}, err
	}
	if t.Signs, err = convert("signs", doc.Signs); err != nil {
		return Tables{}, err
	}
	return t, nil
}

// LoadFile reads an overlay document from path.
func LoadFile(path string) (Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Tables{}, errors.NotFound(errors.PhaseLoad, "overlay", path)
		}
		return Tables{}, errors.Wrap(errors.PhaseLoad, errors.KindIO, err, "open overlay")
	}
	defer f.Close()
	return LoadYAML(f)
}

func convert(section string, in map[string]string) (map[rune]braille.DotCode, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[rune]braille.DotCode, len(in))
	for key, value := range in {
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) {
			return nil, errors.InvalidData(errors.PhaseLoad, []string{section, key}, "key must be exactly one character")
		}
		code, err := braille.ParseDotCode(value)
		if err != nil {
			return nil, errors.New(errors.PhaseLoad, errors.KindMalformedCell).
				Path(section, key).
				Token(value).
				Value(r).
				Detail("invalid dot code for %q", r).
				Cause(err).
				Build()
		}
		out[r] = code
	}
	return out, nil
}
