package parser

import "strings"

// typoReplacer performs the fixed smart-typography substitutions. The
// longer patterns come first so "..." wins over ".." and "---" over "--".
//
//nolint:gochecknoglobals // immutable, built once
var typoReplacer = strings.NewReplacer(
	"...", "…", // ellipsis
	"---", "—", // em dash
	"--", "–", // en dash
	"(C)", "©",
	"(R)", "®",
	"(TM)", "™",
	"(P)", "§",
	"+-", "±",
)

// applyTypography rewrites a merged text token's value with typographic
// substitutions. It never changes the token's Len, which keeps tracking
// the source bytes consumed.
func applyTypography(s string) string {
	return smartQuotes(typoReplacer.Replace(s))
}

// smartQuotes replaces straight quotes with typographic ones, using the
// preceding character to decide between opening and closing forms: a
// quote after start-of-text, whitespace or an opening bracket opens,
// anything else closes. A closing single quote doubles as an apostrophe.
func smartQuotes(s string) string {
	if !strings.ContainsAny(s, `"'`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	prev := rune(0)
	for _, r := range s {
		switch r {
		case '"':
			if opensQuote(prev) {
				b.WriteRune('“')
			} else {
				b.WriteRune('”')
			}
		case '\'':
			if opensQuote(prev) {
				b.WriteRune('‘')
			} else {
				b.WriteRune('’')
			}
		default:
			b.WriteRune(r)
		}
		prev = r
	}

	return b.String()
}

func opensQuote(prev rune) bool {
	switch prev {
	case 0, ' ', '\t', '\n', '(', '[', '{', '-', '–', '—':
		return true
	default:
		return false
	}
}
