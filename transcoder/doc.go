// Package transcoder converts Spanish text to six-dot Braille.
//
// Each line passes through a per-character state machine that emits a
// dot-code string, which is then encoded to Unicode Braille patterns twice:
// once as read, once mirrored for the back of the page.
//
//	text ─→ [state machine] ─→ dot code ─┬─→ [Encode] ─────────────────→ forward
//	                                      └─→ [MirrorLine] ─→ [Encode] ─→ mirrored
//
// # Dot-Code Strings
//
// Cells are written as their raised dots and separated by single spaces.
// Words are followed by a separator, so two words are parted by an empty
// token, which encodes as the blank cell U+2800:
//
//	"Hola mundo" → "46 125 135 123 1  134 136 1345 145 135"
//
// # Mode Markers
//
//	Marker              Cells   Emitted
//	────────────────────────────────────────────────────────────────
//	capital letter      46      before an uppercase letter
//	capital word        46 46   before a word of two or more capitals
//	numeric prefix      3456    before the first digit of a run
//	numeric terminator  5       after a run, before a letter or sign
//
// Words shaped like emails, URLs or tags are composite: their digits use the
// dictionary's composite variant and take no prefix or terminator.
//
// A '.' between two digits is a thousands separator and is written with the
// ',' entry.
//
// # Encoding
//
// Dot n sets bit n-1 above U+2800:
//
//	"125" → 0b010011 → U+2813 ⠓
//
// Digits outside 1-6 are dropped during encoding. Validate reports them for
// callers that prefer to reject such input.
//
// # Mirroring
//
// MirrorLine reverses the token order of a line and swaps the columns of
// each cell (1↔4, 2↔5, 3↔6), giving the dots as seen from the reverse side.
//
// # Error Handling
//
// Translation never fails. Characters without a dictionary entry are
// dropped and listed in Result.Unresolved; Result.Err wraps them in an
// *errors.UnresolvedError:
//
//	1 unresolved character(s):
//	  line 1:
//	    - '☺' (U+263A) at column 6
//
// # Thread Safety
//
// Transcoder is immutable after New and safe for concurrent use. All
// scanning state is local to a single call.
package transcoder
