// Package validate classifies whole tokens as email, URL or tag shaped.
//
// The transcoder asks the Validator once per word; a match switches the word
// to composite mode, where digits are written without the numeric prefix.
package validate

import (
	"regexp"
	"strings"

	"github.com/wippyai/braille"
)

// Trailing characters ignored before matching, so a token that ends a
// sentence or clause is still recognized.
const trailingPunct = ".,;:!?)»\""

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@.]+(\.[^\s@.]+)+$`)
	urlPattern    = regexp.MustCompile(`(?i)^((https?|ftp)://|www\.)\S+$`)
	domainPattern = regexp.MustCompile(`(?i)^[a-z0-9-]*[a-z][a-z0-9-]*(\.[a-z0-9-]+)*\.[a-z]{2,}(/\S*)?$`)
	tagPattern    = regexp.MustCompile(`^[#@][\p{L}\p{N}_]+$`)
)

// Validator implements braille.Validator. The zero value is ready to use and
// safe for concurrent use.
type Validator struct{}

var _ braille.Validator = (*Validator)(nil)

// New returns a Validator.
func New() *Validator {
	return &Validator{}
}

// IsEmailLike reports whether token looks like local@domain.tld.
func (v *Validator) IsEmailLike(token string) bool {
	return emailPattern.MatchString(trim(token))
}

// IsURLLike reports whether token has a URL scheme, a www. prefix or is a
// bare domain with an alphabetic top-level label. A bare domain needs a letter
// in its first label, so ordinals like "1.er" stay plain text.
func (v *Validator) IsURLLike(token string) bool {
	t := trim(token)
	return urlPattern.MatchString(t) || domainPattern.MatchString(t)
}

// IsTagLike reports whether token is a hashtag or mention.
func (v *Validator) IsTagLike(token string) bool {
	return tagPattern.MatchString(trim(token))
}

func trim(token string) string {
	return strings.TrimRight(token, trailingPunct)
}
