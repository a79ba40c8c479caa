// Package validate contains the input predicates used by the intake state
// machine. Each predicate is a total function over a possibly empty string:
// it never panics and reports false for anything malformed.
package validate

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^[+0-9][0-9\s-]{6,}$`)
	docRe   = regexp.MustCompile(`^[A-Za-z0-9.-]{4,}$`)
)

// Email reports whether s looks like local@domain.tld. RFC 5322 edge cases
// are deliberately not handled.
func Email(s string) bool { return emailRe.MatchString(s) }

// Phone reports whether s starts with a digit or "+" followed by at least six
// more characters drawn from digits, spaces, or hyphens.
func Phone(s string) bool { return phoneRe.MatchString(s) }

// Document reports whether s is at least four characters drawn from letters,
// digits, "." and "-".
func Document(s string) bool { return docRe.MatchString(s) }
