package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	brerrors "github.com/wippyai/braille/errors"
	"github.com/wippyai/braille/transcoder"
)

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("desde archivo\n"), 0o644))

	tests := []struct {
		name     string
		cfg      config
		stdin    string
		terminal bool
		want     string
	}{
		{"text wins", config{text: "hola", file: path}, "pipe", false, "hola"},
		{"file before stdin", config{file: path}, "pipe", false, "desde archivo\n"},
		{"piped stdin", config{}, "pipe\n", false, "pipe\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readInput(tt.cfg, strings.NewReader(tt.stdin), tt.terminal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadInput_NoInput(t *testing.T) {
	_, err := readInput(config{}, strings.NewReader("ignored"), true)
	require.Error(t, err)

	var e *brerrors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, brerrors.KindInvalidInput, e.Kind)
	assert.Equal(t, brerrors.PhaseConfig, e.Phase)
}

func TestReadInput_MissingFile(t *testing.T) {
	_, err := readInput(config{file: filepath.Join(t.TempDir(), "nope.txt")}, nil, true)
	require.Error(t, err)

	var e *brerrors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, brerrors.KindIO, e.Kind)
}

func TestRun_Forward(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(config{text: "Hola"}, transcoder.NewWithDefaults(), nil, true, &out, &errOut)
	require.NoError(t, err)

	assert.Equal(t, "⠨ ⠓ ⠕ ⠇ ⠁\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRun_DotsAndMirror(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := config{text: "Hola", dots: true, mirror: true}
	require.NoError(t, run(cfg, transcoder.NewWithDefaults(), nil, true, &out, &errOut))

	want := "46 125 135 123 1\n\n" +
		"⠨ ⠓ ⠕ ⠇ ⠁\n" +
		"\n⠈ ⠸ ⠪ ⠚ ⠅\n"
	assert.Equal(t, want, out.String())
}

func TestRun_PipedInputDropsFinalNewline(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(config{dots: true}, transcoder.NewWithDefaults(), strings.NewReader("Hola\n"), false, &out, &errOut)
	require.NoError(t, err)

	assert.Equal(t, "46 125 135 123 1\n\n⠨ ⠓ ⠕ ⠇ ⠁\n", out.String())
}

func TestRun_Unresolved(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(config{text: "hola ☺"}, transcoder.NewWithDefaults(), nil, true, &out, &errOut)
	require.NoError(t, err)

	assert.NotEmpty(t, out.String())
	assert.Contains(t, errOut.String(), "warning:")
	assert.Contains(t, errOut.String(), "U+263A")
}

func TestRun_StrictFails(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(config{text: "hola ☺", strict: true}, transcoder.NewWithDefaults(), nil, true, &out, &errOut)
	require.Error(t, err)

	var ue *brerrors.UnresolvedError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, []rune{'☺'}, ue.Runes())
	// output is still written before the failure is reported
	assert.NotEmpty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestRun_NoInputPrintsUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(config{}, transcoder.NewWithDefaults(), strings.NewReader(""), true, &out, &errOut)
	require.Error(t, err)

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Usage:")
}

func TestNewTranscoder_DictOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	overlay := "signs:\n  \"☺\": \"12\"\n"
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	tr, err := newTranscoder(config{dict: path}, zap.NewNop())
	require.NoError(t, err)

	res := tr.Translate("☺")
	assert.Empty(t, res.Unresolved)
	assert.Equal(t, "12", res.DotCode)
}

func TestNewTranscoder_BadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("signs:\n  \"☺\": \"19\"\n"), 0o644))

	_, err := newTranscoder(config{dict: path}, zap.NewNop())
	require.Error(t, err)

	var e *brerrors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, brerrors.KindMalformedCell, e.Kind)
}

func TestNewTranscoder_MissingOverlay(t *testing.T) {
	_, err := newTranscoder(config{dict: filepath.Join(t.TempDir(), "missing.yaml")}, zap.NewNop())
	require.Error(t, err)

	var e *brerrors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, brerrors.KindNotFound, e.Kind)
}

func TestNewTranscoder_NoNormalize(t *testing.T) {
	tr, err := newTranscoder(config{noNormalize: true}, zap.NewNop())
	require.NoError(t, err)

	// the combining acute has no entry on its own
	res := tr.Translate("cafe\u0301")
	require.Len(t, res.Unresolved, 1)
	assert.Equal(t, '\u0301', res.Unresolved[0].Char)
}

func TestTrimFinalNewline(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"hola", "hola"},
		{"hola\n", "hola"},
		{"hola\r\n", "hola"},
		{"hola\n\n", "hola\n"},
		{"\n", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, trimFinalNewline(tt.in), "input %q", tt.in)
	}
}
