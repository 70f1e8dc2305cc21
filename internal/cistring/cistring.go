// Package cistring implements a case-insensitive string key suitable for
// use as a map key, matching BASIC's case-insensitive keyword lexicon.
package cistring

import "strings"

// String is a map key that compares and hashes case-insensitively when
// built with Key, which folds the text to upper case. A String converted
// directly from a string is not folded.
type String string

// Key folds s to its canonical (upper-case) form for use as a map key.
func Key(s string) String {
	return String(strings.ToUpper(s))
}

// Equal reports whether a and b are equal ignoring case.
func Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}

// String returns the wrapped text (upper-cased, if s came from Key).
func (s String) String() string {
	return string(s)
}
