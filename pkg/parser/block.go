package parser

import (
	"strings"

	"github.com/yaklabco/mdparse/pkg/langdetect"
	"github.com/yaklabco/mdparse/pkg/mdast"
)

// blockRecognizers is the fixed priority order of block-level constructs.
// First match wins: indented code is tried before fences so an indented
// fence degrades to code, thematic break before heading so "---" is never
// a setext underline of nothing, and paragraph is the catch-all that must
// come last. Assigned in init to break the initialization cycle through
// the recognizer functions, which reference this slice via tokenizeBlock.
var blockRecognizers []recognizer

func init() {
	blockRecognizers = []recognizer{
		{"newline", matchNewline},
		{"code", matchCodeIndented},
		{"fences", matchFences},
		{"math", matchMathBlock},
		{"thematicBreak", matchThematicBreak},
		{"heading", matchHeading},
		{"blockquote", matchBlockquote},
		{"list", matchList},
		{"html", matchHTMLBlock},
		{"table", matchTable},
		{"footnoteDefinition", matchFootnoteDefinition},
		{"definition", matchDefinition},
		{"paragraph", matchParagraph},
	}
}

// matchNewline consumes one or more blank lines. The parser filters these
// out of the final children; they exist only to separate blocks.
func matchNewline(_ *tokenizer, src string) *mdast.Token {
	m := reNewline.FindString(src)
	if m == "" {
		return nil
	}
	return mdast.NewNewline(len(m))
}

// matchCodeIndented consumes runs of lines indented by four spaces.
func matchCodeIndented(tk *tokenizer, src string) *mdast.Token {
	m := reCodeIndented.FindString(src)
	if m == "" {
		return nil
	}

	value := strings.TrimRight(reCodeStrip.ReplaceAllString(m, ""), "\n")

	lang := ""
	if tk.langDetect {
		lang = langdetect.Detect([]byte(value))
	}

	return mdast.NewCode(len(m), value, lang, "")
}

// matchFences consumes a fenced code block. The opening fence is matched
// by pattern; the closing fence is found by scanning because it must
// repeat the opening character at least as many times. An unterminated
// fence is not a match and degrades to a paragraph.
func matchFences(tk *tokenizer, src string) *mdast.Token {
	m := reFenceOpen.FindStringSubmatch(src)
	if m == nil {
		return nil
	}

	fence := m[1]
	lang, meta := splitInfoString(m[2])

	body := src[len(m[0]):]
	value, consumed, ok := scanFenceClose(body, fence[0], len(fence))
	if !ok {
		return nil
	}

	if tk.langDetect {
		if lang == "" {
			lang = langdetect.Detect([]byte(value))
		} else {
			lang = langdetect.Canonical(lang)
		}
	}

	return mdast.NewCode(len(m[0])+consumed, value, lang, meta)
}

// splitInfoString separates a fence info string into the language tag
// (first word) and the remaining metadata.
func splitInfoString(info string) (lang, meta string) {
	info = strings.TrimSpace(info)
	if info == "" {
		return "", ""
	}

	lang, meta, _ = strings.Cut(info, " ")
	return lang, strings.TrimSpace(meta)
}

// scanFenceClose walks body line by line looking for a closing fence of
// the same character repeated at least openLen times, with nothing else
// on the line. Returns the enclosed content and the number of bytes
// consumed through the end of the closing line.
func scanFenceClose(body string, fenceChar byte, openLen int) (value string, consumed int, ok bool) {
	pos := 0
	for pos < len(body) {
		lineEnd := strings.IndexByte(body[pos:], '\n')
		var line string
		next := len(body)
		if lineEnd >= 0 {
			line = body[pos : pos+lineEnd]
			next = pos + lineEnd + 1
		} else {
			line = body[pos:]
		}

		trimmed := strings.TrimLeft(line, " ")
		if len(line)-len(trimmed) <= 3 {
			run := 0
			for run < len(trimmed) && trimmed[run] == fenceChar {
				run++
			}
			if run >= openLen && strings.TrimRight(trimmed[run:], " \t") == "" {
				return strings.TrimRight(body[:pos], "\n"), next, true
			}
		}

		pos = next
	}

	return "", 0, false
}

// matchMathBlock consumes a $$-delimited display math block.
func matchMathBlock(_ *tokenizer, src string) *mdast.Token {
	m := reMathBlock.FindStringSubmatch(src)
	if m == nil {
		return nil
	}
	return mdast.NewMath(len(m[0]), m[1])
}

// matchThematicBreak consumes a horizontal rule line.
func matchThematicBreak(_ *tokenizer, src string) *mdast.Token {
	m := reThematicBreak.FindString(src)
	if m == "" {
		return nil
	}
	return mdast.NewThematicBreak(len(m), strings.TrimSpace(m))
}

// matchHeading consumes an ATX heading (# through ######) or a setext
// heading (a line underlined with = or -).
func matchHeading(tk *tokenizer, src string) *mdast.Token {
	if m := reHeadingATX.FindStringSubmatch(src); m != nil {
		if m[1] != "" {
			return mdast.NewHeading(len(m[0]), len(m[1]), tk.tokenizeInline(m[2]))
		}
		// Heading marker with no content.
		return mdast.NewHeading(len(m[0]), strings.Count(m[3], "#"), nil)
	}

	if m := reHeadingSetext.FindStringSubmatch(src); m != nil {
		// A line the list or blockquote recognizer would claim is not a
		// heading of that line; both guards reuse those matchers so the
		// decisions cannot drift apart.
		if reListStart.MatchString(m[1]) || reBlockquote.MatchString(m[1]) {
			return nil
		}
		depth := 1
		if m[2][0] == '-' {
			depth = 2
		}
		return mdast.NewHeading(len(m[0]), depth, tk.tokenizeInline(strings.TrimSpace(m[1])))
	}

	return nil
}

// matchBlockquote consumes >-prefixed lines plus lazy continuations,
// strips one level of quote markers, and recursively block-tokenizes the
// dedented content.
func matchBlockquote(tk *tokenizer, src string) *mdast.Token {
	m := reBlockquote.FindString(src)
	if m == "" {
		return nil
	}

	content := reBlockquoteStrip.ReplaceAllString(m, "")
	children := tk.tokenizeChildBlock(content)

	return mdast.NewBlockquote(len(m), children)
}

// matchHTMLBlock consumes a raw HTML block verbatim.
func matchHTMLBlock(_ *tokenizer, src string) *mdast.Token {
	m := reHTMLBlock.FindString(src)
	if m == "" {
		return nil
	}
	return mdast.NewHTML(len(m), strings.TrimRight(m, "\n"))
}

// matchFootnoteDefinition consumes [^id]: text with continuation lines
// indented by at least two spaces.
func matchFootnoteDefinition(tk *tokenizer, src string) *mdast.Token {
	m := reFootnoteDef.FindStringSubmatch(src)
	if m == nil {
		return nil
	}

	content := reOutdent.ReplaceAllString(m[2], "")
	children := tk.tokenizeChildBlock(content)

	return mdast.NewFootnoteDefinition(len(m[0]), m[1], children)
}

// matchDefinition consumes a link reference definition: [id]: url "title".
func matchDefinition(_ *tokenizer, src string) *mdast.Token {
	m := reDefinition.FindStringSubmatch(src)
	if m == nil {
		return nil
	}

	return mdast.NewDefinition(len(m[0]), normalizeIdentifier(m[1]), m[2], stripTitle(m[3]))
}

// matchParagraph is the block-level catch-all: one or more lines that do
// not start a different block construct. It must match any non-empty
// input that reaches it, which is what guarantees consumeLoop always
// terminates.
func matchParagraph(tk *tokenizer, src string) *mdast.Token {
	consumed := 0
	for consumed < len(src) {
		rest := src[consumed:]
		if consumed > 0 && reParagraphCut.MatchString(rest) {
			break
		}

		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			consumed += nl + 1
		} else {
			consumed = len(src)
		}
	}

	if consumed == 0 {
		return nil
	}

	value := strings.TrimRight(src[:consumed], "\n")
	return mdast.NewParagraph(consumed, tk.tokenizeInline(value))
}

// normalizeIdentifier lowercases and trims a reference label so that
// lookups between references and definitions are case-insensitive.
func normalizeIdentifier(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// stripTitle removes the surrounding quote or parenthesis delimiters from
// a matched title and unescapes embedded quotes. Returns "" for an absent
// title.
func stripTitle(title string) string {
	if len(title) < 2 {
		return ""
	}

	body := title[1 : len(title)-1]
	switch title[0] {
	case '"':
		return strings.ReplaceAll(body, `\"`, `"`)
	case '\'':
		return strings.ReplaceAll(body, `\'`, `'`)
	default:
		return body
	}
}
