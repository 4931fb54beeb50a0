package htmltext

import "strings"

// NormalizeSpace collapses runs of whitespace into single spaces and trims
// the result. Applying it to already-normalized text is the identity.
func NormalizeSpace(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(s), " ")
}
