// Package braille converts Spanish text to six-dot Braille.
//
// Output comes in two notations: a dot-code string, where every cell is the
// list of its raised dots ("46 125 135 123 1"), and Unicode Braille patterns
// from the U+2800 block ("⠨ ⠓ ⠕ ⠇ ⠁"). Every translation also yields a
// mirrored rendition, with cells reversed and dots swapped between columns,
// for embossing on the back of a page.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	braille/             Root package with DotCode, Class and the collaborator interfaces
//	├── transcoder/      Line state machine, dot-matrix encoder, mirror transform
//	├── dictionary/      Spanish Braille tables and YAML overlays
//	├── validate/        Email, URL and tag token classification
//	├── errors/          Structured error types and unresolved-character diagnostics
//	└── cmd/braille/     Command line and interactive front end
//
// # Quick Start
//
//	tr := transcoder.NewWithDefaults()
//	res := tr.Translate("Hola")
//	fmt.Println(res.DotCode)  // 46 125 135 123 1
//	fmt.Println(res.Forward)  // ⠨ ⠓ ⠕ ⠇ ⠁
//
// # Cell Layout
//
//	1 ● ● 4
//	2 ● ● 5
//	3 ● ● 6
//
// Dot n sets bit n-1 of the pattern offset, so the cell "125" is
// U+2800 + 0b010011 = U+2813 (⠓).
//
// # Thread Safety
//
// The Transcoder, the built-in Dictionary and the Validator hold no mutable
// state after construction and are safe for concurrent use.
package braille
