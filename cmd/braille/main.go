package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/braille/dictionary"
	"github.com/wippyai/braille/errors"
	"github.com/wippyai/braille/transcoder"
)

type config struct {
	text        string
	file        string
	dict        string
	dots        bool
	mirror      bool
	strict      bool
	noNormalize bool
	verbose     bool
	interactive bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.text, "text", "", "Text to translate")
	flag.StringVar(&cfg.file, "file", "", "Path to a UTF-8 text file to translate")
	flag.StringVar(&cfg.dict, "dict", "", "YAML dictionary overlay")
	flag.BoolVar(&cfg.dots, "dots", false, "Also print dot codes")
	flag.BoolVar(&cfg.mirror, "mirror", false, "Also print the mirrored rendition for the reverse side")
	flag.BoolVar(&cfg.strict, "strict", false, "Fail when characters cannot be translated")
	flag.BoolVar(&cfg.noNormalize, "no-normalize", false, "Disable NFC normalization of the input")
	flag.BoolVar(&cfg.verbose, "v", false, "Debug logging to stderr")
	flag.BoolVar(&cfg.interactive, "i", false, "Interactive mode with TUI")
	flag.Parse()

	log := zap.NewNop()
	if cfg.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
	}
	defer log.Sync() //nolint:errcheck // stderr sync errors are not actionable
	transcoder.SetLogger(log)

	tr, err := newTranscoder(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.interactive {
		if !stdoutIsTerminal() {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(tr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, tr, os.Stdin, stdinIsTerminal(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: braille -text <text> [-dots] [-mirror] [-strict] [-dict overlay.yaml]")
	fmt.Fprintln(w, "       braille -file <path> [...]")
	fmt.Fprintln(w, "       echo texto | braille [...]")
	fmt.Fprintln(w, "       braille -i  (interactive mode)")
}

func newTranscoder(cfg config, log *zap.Logger) (*transcoder.Transcoder, error) {
	opts := transcoder.DefaultOptions()
	opts.Normalize = !cfg.noNormalize

	if cfg.dict != "" {
		overlay, err := dictionary.LoadFile(cfg.dict)
		if err != nil {
			return nil, err
		}
		d, err := dictionary.Spanish().Merge(overlay)
		if err != nil {
			return nil, err
		}
		opts.Dictionary = d
		log.Debug("loaded dictionary overlay",
			zap.String("path", cfg.dict),
			zap.Int("entries", overlay.Len()),
		)
	}

	return transcoder.New(opts), nil
}

func readInput(cfg config, stdin io.Reader, stdinTerminal bool) (string, error) {
	switch {
	case cfg.text != "":
		return cfg.text, nil
	case cfg.file != "":
		data, err := os.ReadFile(cfg.file)
		if err != nil {
			return "", errors.Wrap(errors.PhaseConfig, errors.KindIO, err, "read input file")
		}
		return string(data), nil
	case !stdinTerminal:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(errors.PhaseConfig, errors.KindIO, err, "read stdin")
		}
		return string(data), nil
	}
	return "", errors.InvalidInput(errors.PhaseConfig, "no input: use -text, -file or pipe text on stdin")
}

func run(cfg config, tr *transcoder.Transcoder, stdin io.Reader, stdinTerminal bool, out, errOut io.Writer) error {
	text, err := readInput(cfg, stdin, stdinTerminal)
	if err != nil {
		if e, ok := err.(*errors.Error); ok && e.Kind == errors.KindInvalidInput {
			usage(errOut)
		}
		return err
	}
	if cfg.file != "" || !stdinTerminal && cfg.text == "" {
		// files and pipes usually end with a newline that is not a line of text
		text = trimFinalNewline(text)
	}

	res := tr.Translate(text)

	if cfg.dots {
		fmt.Fprintf(out, "%s\n\n", res.DotCode)
	}
	fmt.Fprintln(out, res.Forward)
	if cfg.mirror {
		fmt.Fprintf(out, "\n%s\n", res.Mirrored)
	}

	if err := res.Err(); err != nil {
		if cfg.strict {
			return err
		}
		fmt.Fprintf(errOut, "warning: %v\n", err)
	}
	return nil
}

func trimFinalNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
		if n := len(s); n > 0 && s[n-1] == '\r' {
			s = s[:n-1]
		}
	}
	return s
}
