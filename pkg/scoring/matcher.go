package scoring

import (
	"regexp"
	"strings"
)

// nonWord is any rune that cannot be part of a word. RE2's \b only knows
// ASCII word characters, so boundaries are spelled out with Unicode classes.
const nonWord = `[^\p{L}\p{N}_]`

// compileTerms builds one case-insensitive pattern matching any of terms.
// Terms are literal: regex metacharacters are escaped.
func compileTerms(mode MatchMode, terms ...string) *regexp.Regexp {
	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(term))
	}
	if len(quoted) == 0 {
		return nil
	}

	alternation := "(?:" + strings.Join(quoted, "|") + ")"
	if mode == MatchSubstring {
		return regexp.MustCompile("(?i)" + alternation)
	}
	return regexp.MustCompile("(?i)(?:^|" + nonWord + ")" + alternation + "(?:$|" + nonWord + ")")
}
