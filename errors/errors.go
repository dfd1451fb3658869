package errors

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseTranslate Phase = "translate" // text to dot code
	PhaseEncode    Phase = "encode"    // dot code to Unicode
	PhaseValidate  Phase = "validate"  // dot code validation
	PhaseLoad      Phase = "load"      // dictionary loading
	PhaseConfig    Phase = "config"    // options and flags
)

// Kind categorizes the error
type Kind string

const (
	KindUnresolved    Kind = "unresolved"
	KindMalformedCell Kind = "malformed_cell"
	KindInvalidData   Kind = "invalid_data"
	KindInvalidInput  Kind = "invalid_input"
	KindNotFound      Kind = "not_found"
	KindIO            Kind = "io"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Token  string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Token != "" {
		b.WriteString(": token ")
		b.WriteString(strconv.Quote(e.Token))
	}

	if e.Detail != "" {
		if e.Token != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the location path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Token sets the offending token or cell
func (b *Builder) Token(t string) *Builder {
	b.err.Token = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedCell creates an error for a dot-code cell that is empty, holds a
// digit outside 1-6 or repeats a digit.
func MalformedCell(phase Phase, path []string, cell, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMalformedCell,
		Path:   path,
		Token:  cell,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Load creates a dictionary loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// Unresolved is a single character the dictionary could not map.
type Unresolved struct {
	Char   rune
	Line   int // 1-based
	Column int // 1-based rune offset within the line
}

// UnresolvedError is the non-fatal diagnostic reported when a translation
// skipped characters without a dictionary entry.
type UnresolvedError struct {
	Chars []Unresolved
}

// NewUnresolvedError copies chars into a new diagnostic.
func NewUnresolvedError(chars []Unresolved) *UnresolvedError {
	result := &UnresolvedError{
		Chars: make([]Unresolved, len(chars)),
	}
	copy(result.Chars, chars)
	return result
}

// Runes returns the distinct unresolved characters in ascending order.
func (e *UnresolvedError) Runes() []rune {
	seen := make(map[rune]struct{}, len(e.Chars))
	var out []rune
	for _, u := range e.Chars {
		if _, ok := seen[u.Char]; ok {
			continue
		}
		seen[u.Char] = struct{}{}
		out = append(out, u.Char)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (e *UnresolvedError) Error() string {
	if len(e.Chars) == 0 {
		return "[translate] unresolved: no characters specified"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d unresolved character(s):\n", len(e.Chars)))

	// Group by line for cleaner output
	byLine := make(map[int][]string)
	var lineOrder []int
	for _, u := range e.Chars {
		if _, exists := byLine[u.Line]; !exists {
			lineOrder = append(lineOrder, u.Line)
		}
		byLine[u.Line] = append(byLine[u.Line], fmt.Sprintf("%q (U+%04X) at column %d", u.Char, u.Char, u.Column))
	}

	for _, line := range lineOrder {
		b.WriteString("\n  line ")
		b.WriteString(strconv.Itoa(line))
		b.WriteString(":\n")
		for _, c := range byLine[line] {
			b.WriteString("    - ")
			b.WriteString(c)
			b.WriteByte('\n')
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *UnresolvedError) Is(target error) bool {
	switch t := target.(type) {
	case *UnresolvedError:
		return true
	case *Error:
		return t.Phase == PhaseTranslate && t.Kind == KindUnresolved
	}
	return false
}
