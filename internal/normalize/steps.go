package normalize

import (
	"strings"
	"unicode"
)

// localPrefix is the Indonesian local dialing prefix. Numbers written as
// 08xxxxxxxx are rewritten to the international +628xxxxxxxx form.
const (
	localPrefix         = "08"
	internationalPrefix = "+628"
)

// containsLetter reports whether s contains any alphabetic character.
// Letters anywhere in the value disqualify it outright, before any
// filtering, so "call me" annotations never turn into dialable digits.
func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// filterDialable strips spaces, hyphens, and parentheses, then keeps only
// digits and '+'. Any other punctuation is silently dropped; this is an
// intentional lossy filter, not an error path.
func filterDialable(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// rewriteLocalPrefix rewrites a filtered value starting with "08" to the
// international "+628" form. The prefix is matched only at the very start
// of the filtered string, and the rewrite is unconditional for any value
// matching it.
func rewriteLocalPrefix(s string) string {
	if strings.HasPrefix(s, localPrefix) {
		return internationalPrefix + s[len(localPrefix):]
	}
	return s
}

// isInternational reports whether s is a '+' followed by one or more
// digits and nothing else.
func isInternational(s string) bool {
	if len(s) < 2 || s[0] != '+' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
