package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/braille"
	brerrors "github.com/wippyai/braille/errors"
)

func TestSpanish_Letters(t *testing.T) {
	d := Spanish()

	for r := 'a'; r <= 'z'; r++ {
		code, ok := d.Letter(r)
		require.True(t, ok, "letter %q", r)
		assert.Len(t, code.Cells(), 1, "letter %q", r)
	}
	for _, r := range "ñáéíóúü" {
		_, ok := d.Letter(r)
		assert.True(t, ok, "letter %q", r)
	}

	_, ok := d.Letter('A')
	assert.False(t, ok, "uppercase letters are looked up lowercased by the caller")
}

func TestSpanish_KnownCodes(t *testing.T) {
	d := Spanish()
	tests := []struct {
		r    rune
		want braille.DotCode
	}{
		{'a', "1"},
		{'h', "125"},
		{'o', "135"},
		{'l', "123"},
		{'ñ', "12456"},
		{'w', "2456"},
		{'á', "12356"},
	}
	for _, tt := range tests {
		code, ok := d.Letter(tt.r)
		require.True(t, ok)
		assert.Equal(t, tt.want, code, "letter %q", tt.r)
	}
}

func TestSpanish_Digits(t *testing.T) {
	d := Spanish()
	for r := '0'; r <= '9'; r++ {
		plain, ok := d.Digit(r, false)
		require.True(t, ok, "digit %q", r)
		composite, ok := d.Digit(r, true)
		require.True(t, ok, "composite digit %q", r)
		assert.NotEqual(t, plain, composite, "digit %q variants must differ", r)
	}

	one, _ := d.Digit('1', false)
	a, _ := d.Letter('a')
	assert.Equal(t, a, one, "plain digits share the a-j shapes")

	_, ok := d.Digit('x', false)
	assert.False(t, ok)
}

func TestSpanish_Signs(t *testing.T) {
	d := Spanish()
	for _, r := range ".,;:¿?¡!\"()-@#%ºª" {
		_, ok := d.Sign(r)
		assert.True(t, ok, "sign %q", r)
	}

	period, _ := d.Sign('.')
	comma, _ := d.Sign(',')
	assert.NotEqual(t, period, comma)

	_, ok := d.Sign('☺')
	assert.False(t, ok)
}

func TestSpanish_AllCodesValid(t *testing.T) {
	tables := Spanish().Tables()
	for _, section := range []map[rune]braille.DotCode{tables.Letters, tables.Digits, tables.CompositeDigits, tables.Signs} {
		for r, code := range section {
			_, err := braille.ParseDotCode(string(code))
			assert.NoError(t, err, "entry %q", r)
		}
	}
}

func TestSpanish_Shared(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Dictionary, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Spanish()
		}(i)
	}
	wg.Wait()
	for _, d := range got {
		assert.Same(t, got[0], d)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		t    Tables
		kind brerrors.Kind
	}{
		{
			name: "uppercase letter key",
			t:    Tables{Letters: map[rune]braille.DotCode{'A': "1"}},
			kind: brerrors.KindInvalidData,
		},
		{
			name: "non-letter key",
			t:    Tables{Letters: map[rune]braille.DotCode{'1': "1"}},
			kind: brerrors.KindInvalidData,
		},
		{
			name: "non-digit key",
			t:    Tables{Digits: map[rune]braille.DotCode{'a': "1"}},
			kind: brerrors.KindInvalidData,
		},
		{
			name: "malformed code",
			t:    Tables{Signs: map[rune]braille.DotCode{'#': "3457"}},
			kind: brerrors.KindMalformedCell,
		},
		{
			name: "repeated dot",
			t:    Tables{CompositeDigits: map[rune]braille.DotCode{'1': "22"}},
			kind: brerrors.KindMalformedCell,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.t)
			require.Error(t, err)
			assert.Nil(t, d)

			var e *brerrors.Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, brerrors.PhaseLoad, e.Phase)
		})
	}
}

func TestNew_CopiesTables(t *testing.T) {
	letters := map[rune]braille.DotCode{'a': "1"}
	d, err := New(Tables{Letters: letters})
	require.NoError(t, err)

	letters['a'] = "2"
	code, _ := d.Letter('a')
	assert.Equal(t, braille.DotCode("1"), code)
}

func TestMerge(t *testing.T) {
	base := Spanish()
	merged, err := base.Merge(Tables{
		Letters: map[rune]braille.DotCode{'a': "16"},
		Signs:   map[rune]braille.DotCode{'☺': "1 2"},
	})
	require.NoError(t, err)

	code, _ := merged.Letter('a')
	assert.Equal(t, braille.DotCode("16"), code)
	code, ok := merged.Sign('☺')
	assert.True(t, ok)
	assert.Equal(t, braille.DotCode("1 2"), code)

	// base untouched
	code, _ = base.Letter('a')
	assert.Equal(t, braille.DotCode("1"), code)
	_, ok = base.Sign('☺')
	assert.False(t, ok)

	assert.Equal(t, base.Tables().Len()+1, merged.Tables().Len())
}

func TestMerge_Invalid(t *testing.T) {
	_, err := Spanish().Merge(Tables{Signs: map[rune]braille.DotCode{'☺': ""}})
	require.Error(t, err)
}

func TestMerge_InvalidReportsEntry(t *testing.T) {
	_, err := Spanish().Merge(Tables{Signs: map[rune]braille.DotCode{'☺': "19"}})
	require.Error(t, err)

	var e *brerrors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, brerrors.KindMalformedCell, e.Kind)
	assert.Equal(t, '☺', e.Value)
	assert.Equal(t, "19", e.Token)
	assert.Contains(t, e.Detail, "'☺'")
	assert.Contains(t, e.Error(), "invalid dot code")
}

func TestLoadYAML(t *testing.T) {
	doc := `
letters:
  "ç": "12346"
digits:
  "1": 16
composite_digits:
  "2": "23"
signs:
  "#": "3456"
  "☺": "1 2"
`
	tables, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, braille.DotCode("12346"), tables.Letters['ç'])
	assert.Equal(t, braille.DotCode("16"), tables.Digits['1'])
	assert.Equal(t, braille.DotCode("23"), tables.CompositeDigits['2'])
	assert.Equal(t, braille.DotCode("3456"), tables.Signs['#'])
	assert.Equal(t, braille.DotCode("1 2"), tables.Signs['☺'])
	assert.Equal(t, 5, tables.Len())

	d, err := Spanish().Merge(tables)
	require.NoError(t, err)
	code, _ := d.Sign('#')
	assert.Equal(t, braille.DotCode("3456"), code)
}

func TestLoadYAML_Empty(t *testing.T) {
	tables, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, tables.Len())
}

func TestLoadYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind brerrors.Kind
		path []string
	}{
		{
			name: "multi-character key",
			doc:  "signs:\n  \"ab\": \"1\"\n",
			kind: brerrors.KindInvalidData,
			path: []string{"signs", "ab"},
		},
		{
			name: "bad dot code",
			doc:  "letters:\n  \"x\": \"19\"\n",
			kind: brerrors.KindMalformedCell,
			path: []string{"letters", "x"},
		},
		{
			name: "unknown section",
			doc:  "symbols:\n  \"#\": \"3456\"\n",
			kind: brerrors.KindInvalidData,
		},
		{
			name: "not yaml",
			doc:  "letters: [unterminated",
			kind: brerrors.KindInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.doc))
			require.Error(t, err)

			var e *brerrors.Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, brerrors.PhaseLoad, e.Phase)
			assert.Equal(t, tt.kind, e.Kind)
			if tt.path != nil {
				assert.Equal(t, tt.path, e.Path)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("signs:\n  \"☺\": \"1 2\"\n"), 0o600))

	tables, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, braille.DotCode("1 2"), tables.Signs['☺'])

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, &brerrors.Error{Phase: brerrors.PhaseLoad, Kind: brerrors.KindNotFound}))
}
