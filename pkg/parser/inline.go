package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/mdparse/pkg/mdast"
)

// inlineRecognizers is the fixed priority order of inline constructs.
// escape must run first so an escaped delimiter never triggers a later
// recognizer; strong must precede emphasis so "**x**" is not torn into
// two single-delimiter spans; text is the universal catch-all and must
// be last. Assigned in init to break the initialization cycle through
// the recognizer functions, which reference this slice via tokenizeInline.
var inlineRecognizers []recognizer

func init() {
	inlineRecognizers = []recognizer{
		{"escape", matchEscape},
		{"inlineCode", matchInlineCode},
		{"strong", matchStrong},
		{"emphasis", matchEmphasis},
		{"spoiler", matchSpoiler},
		{"delete", matchDelete},
		{"inlineMath", matchInlineMath},
		{"footnoteReference", matchFootnoteReference},
		{"link", matchLink},
		{"linkReference", matchLinkReference},
		{"inlineLink", matchBareURL},
		{"sup", matchSup},
		{"sub", matchSub},
		{"mark", matchMark},
		{"handle", matchHandle},
		{"underline", matchUnderline},
		{"break", matchHardBreak},
		{"icon", matchIcon},
		{"text", matchText},
	}
}

// matchEscape turns a backslash-escaped punctuation character into a
// plain text token, which later merges with its neighbors.
func matchEscape(_ *tokenizer, src string) *mdast.Token {
	m := reEscape.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	return mdast.NewText(len(m[0]), m[1])
}

// matchInlineCode consumes a backtick code span. The closing run must
// have exactly the same length as the opening run, so it is found by
// scanning rather than by pattern.
func matchInlineCode(_ *tokenizer, src string) *mdast.Token {
	if src[0] != '`' {
		return nil
	}

	open := 0
	for open < len(src) && src[open] == '`' {
		open++
	}

	i := open
	for i < len(src) {
		if src[i] != '`' {
			i++
			continue
		}
		run := 0
		for i+run < len(src) && src[i+run] == '`' {
			run++
		}
		if run == open {
			value := strings.TrimSpace(src[open:i])
			return mdast.NewInlineCode(i+run, value)
		}
		i += run
	}

	return nil
}

// matchStrong consumes ** or __ delimited strong emphasis.
func matchStrong(tk *tokenizer, src string) *mdast.Token {
	var delim byte
	switch {
	case strings.HasPrefix(src, "**"):
		delim = '*'
	case strings.HasPrefix(src, "__"):
		delim = '_'
	default:
		return nil
	}

	content, consumed, ok := scanDoubleClose(src, delim)
	if !ok || !flanked(content) {
		return nil
	}

	return mdast.NewStrong(consumed, tk.tokenizeInline(content))
}

// scanDoubleClose finds the closing double-delimiter run for a span that
// opens with two copies of delim. A valid close is not followed by a
// third delimiter and not escaped, mirroring the "not followed by
// another same delimiter" rule that keeps "**a**" from splitting.
func scanDoubleClose(src string, delim byte) (content string, consumed int, ok bool) {
	for i := 3; i+1 < len(src); i++ {
		if src[i] != delim || src[i+1] != delim || src[i-1] == '\\' {
			continue
		}
		if i+2 < len(src) && src[i+2] == delim {
			continue
		}
		return src[2:i], i + 2, true
	}
	return "", 0, false
}

// matchEmphasis consumes * or _ delimited emphasis. Doubled delimiters
// inside the span are content; for underscores, the closing delimiter
// must not be followed by a word character (intra-word underscores stay
// literal).
func matchEmphasis(tk *tokenizer, src string) *mdast.Token {
	delim := src[0]
	if delim != '*' && delim != '_' {
		return nil
	}
	if len(src) < 3 || src[1] == delim {
		return nil
	}

	for i := 1; i < len(src); i++ {
		switch {
		case src[i] == '\\':
			i++
		case src[i] == delim:
			if i+1 < len(src) && src[i+1] == delim {
				i++
				continue
			}
			if isSpaceByte(src[i-1]) {
				continue
			}
			if delim == '_' && i+1 < len(src) && isWordByte(src[i+1]) {
				continue
			}
			content := src[1:i]
			if !flanked(content) {
				return nil
			}
			return mdast.NewEmphasis(i+1, tk.tokenizeInline(content))
		}
	}

	return nil
}

// flanked reports whether span content is non-empty and has no
// whitespace adjacent to either delimiter.
func flanked(content string) bool {
	if content == "" {
		return false
	}
	return !isSpaceByte(content[0]) && !isSpaceByte(content[len(content)-1])
}

func matchSpoiler(tk *tokenizer, src string) *mdast.Token {
	m := reSpoiler.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	return mdast.NewSpoiler(len(m[0]), tk.tokenizeInline(m[1]))
}

func matchDelete(tk *tokenizer, src string) *mdast.Token {
	m := reDelete.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	return mdast.NewDelete(len(m[0]), tk.tokenizeInline(m[1]))
}

func matchInlineMath(_ *tokenizer, src string) *mdast.Token {
	m := reInlineMath.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	return mdast.NewInlineMath(len(m[0]), m[1])
}

func matchFootnoteReference(_ *tokenizer, src string) *mdast.Token {
	m := reFootnoteRef.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	return mdast.NewFootnoteReference(len(m[0]), m[1])
}

// matchLink consumes an inline link [text](url "title") or image
// ![alt](url "title"), distinguished by the leading bang.
func matchLink(tk *tokenizer, src string) *mdast.Token {
	m := reLink.FindStringSubmatch(src)
	if m == nil {
		return nil
	}

	title := stripTitle(m[4])
	if m[1] == "!" {
		return mdast.NewImage(len(m[0]), m[3], title, m[2])
	}
	return mdast.NewLink(len(m[0]), m[3], title, tk.tokenizeInline(m[2]))
}

// matchLinkReference consumes the reference-style forms: [text][id]
// (full), [label][] (collapsed) and bare [label] (shortcut). The form is
// recorded so a downstream resolver can look up the matching definition.
func matchLinkReference(tk *tokenizer, src string) *mdast.Token {
	if m := reRefLink.FindStringSubmatch(src); m != nil {
		refType := mdast.RefFull
		identifier := normalizeIdentifier(m[3])
		if m[3] == "" {
			refType = mdast.RefCollapsed
			identifier = normalizeIdentifier(m[2])
		}
		return referenceToken(tk, m, identifier, refType)
	}

	m := reShortcutRef.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	// A bracket pair followed by ( or [ belongs to a (possibly
	// malformed) inline link or full reference, not a shortcut.
	if rest := src[len(m[0]):]; len(rest) > 0 && (rest[0] == '(' || rest[0] == '[') {
		return nil
	}
	return referenceToken(tk, m, normalizeIdentifier(m[2]), mdast.RefShortcut)
}

func referenceToken(tk *tokenizer, m []string, identifier string, refType mdast.ReferenceType) *mdast.Token {
	if m[1] == "!" {
		return mdast.NewImageReference(len(m[0]), identifier, refType, m[2])
	}
	return mdast.NewLinkReference(len(m[0]), identifier, refType, tk.tokenizeInline(m[2]))
}

// matchBareURL consumes an undelimited http(s) URL as a link whose text
// is the URL itself.
func matchBareURL(_ *tokenizer, src string) *mdast.Token {
	m := reBareURL.FindString(src)
	if m == "" {
		return nil
	}
	return mdast.NewLink(len(m), m, "", []*mdast.Token{mdast.NewText(len(m), m)})
}

func matchSup(tk *tokenizer, src string) *mdast.Token {
	m := reSup.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	return mdast.NewSup(len(m[0]), tk.tokenizeInline(m[1]))
}

func matchSub(tk *tokenizer, src string) *mdast.Token {
	m := reSubscript.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	return mdast.NewSub(len(m[0]), tk.tokenizeInline(m[1]))
}

func matchMark(tk *tokenizer, src string) *mdast.Token {
	m := reMark.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	return mdast.NewMark(len(m[0]), tk.tokenizeInline(m[1]))
}

// matchHandle consumes a mention such as @user, #tag or ~channel.
func matchHandle(_ *tokenizer, src string) *mdast.Token {
	m := reHandle.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	return mdast.NewHandle(len(m[0]), m[0], m[1])
}

func matchUnderline(tk *tokenizer, src string) *mdast.Token {
	m := reUnderlineInline.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	return mdast.NewUnderline(len(m[0]), tk.tokenizeInline(m[1]))
}

func matchHardBreak(_ *tokenizer, src string) *mdast.Token {
	m := reHardBreak.FindString(src)
	if m == "" {
		return nil
	}
	return mdast.NewBreak(len(m))
}

func matchIcon(_ *tokenizer, src string) *mdast.Token {
	m := reIcon.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	return mdast.NewIcon(len(m[0]), m[1])
}

// matchText is the inline catch-all: the shortest run of characters up
// to the next byte that could start some other inline construct or a
// bare URL. When the current byte is itself a stop byte that no other
// recognizer claimed, it is consumed alone as literal text.
func matchText(_ *tokenizer, src string) *mdast.Token {
	if src == "" {
		return nil
	}

	if textStop[src[0]] || startsBareURL(src) {
		_, size := utf8.DecodeRuneInString(src)
		return mdast.NewText(size, src[:size])
	}

	end := 0
	for end < len(src) {
		if textStop[src[end]] || startsBareURL(src[end:]) {
			break
		}
		_, size := utf8.DecodeRuneInString(src[end:])
		end += size
	}

	return mdast.NewText(end, src[:end])
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}

func isWordByte(b byte) bool {
	return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
