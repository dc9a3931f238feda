package handle

import "regexp"

// Date/numeric tails that follow a handle in a filename: an 8-digit date
// block with optional separators ("20250905", "2025-09-05") or a bare digit
// run of four or more, either of which may be introduced by a single
// underscore, hyphen, or dot.
var (
	tailPattern      = regexp.MustCompile(`[_\-.]?(?:\d{4}[-._]?\d{2}[-._]?\d{2}|\d{4,})$`)
	tailAfterPattern = regexp.MustCompile(`^[\s\-._()\[\]#]*(?:\d{4}[-._]?\d{2}[-._]?\d{2}|\d{4,})?$`)
)

// trimNumericTail strips date and numeric tails from the end of a raw token,
// repeating until no tail remains. A token that is nothing but a tail is
// returned unchanged; it fails the letter check during validation anyway.
func trimNumericTail(token string) string {
	for {
		loc := tailPattern.FindStringIndex(token)
		if loc == nil || loc[0] == 0 {
			return token
		}
		token = token[:loc[0]]
	}
}

// isTailRemainder reports whether the stem content after a candidate token is
// nothing but decoration and an optional date/numeric tail. Used by the
// trailing strategy to anchor candidates at the effective end of the stem.
func isTailRemainder(rest string) bool {
	return tailAfterPattern.MatchString(rest)
}
