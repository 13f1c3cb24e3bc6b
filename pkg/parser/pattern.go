package parser

import (
	"regexp"
	"strings"
)

// fragment is an uncompiled regular expression source. Composite patterns
// are assembled by textually substituting named placeholders with other
// fragments before compilation, so shared pieces like "label" and "title"
// are written exactly once.
type fragment string

// sub returns a copy of the fragment with every occurrence of the named
// placeholder replaced by the sub-fragment's source, wrapped in a
// non-capturing group so alternations stay contained. Substitution is
// purely textual and can be chained: a composite may reference a fragment
// that was itself produced by substitution.
func (f fragment) sub(name string, part fragment) fragment {
	return fragment(strings.ReplaceAll(string(f), name, "(?:"+string(part)+")"))
}

// compile anchors the fragment to the start of input and compiles it.
// Recognizers only ever match prefixes of the remaining input, never
// search forward.
func (f fragment) compile() *regexp.Regexp {
	return regexp.MustCompile("^(?:" + string(f) + ")")
}

// Shared sub-patterns.
const (
	// fragLabel matches link label content with one level of balanced
	// square brackets.
	fragLabel fragment = `(?:\[[^\]]*\]|[^\[\]])*`

	// fragTitle matches a quoted link title including its delimiters,
	// tolerating backslash-escaped quotes.
	fragTitle fragment = `"(?:\\"|[^"])*"|'(?:\\'|[^'])*'|\([^)]*\)`

	// fragBull matches a list bullet marker.
	fragBull fragment = `[*+-]|\d+\.`

	// fragHR matches a thematic break line.
	fragHR fragment = `(?: *[-*_]){3,} *(?:\n+|$)`

	// fragDef matches a link reference definition.
	fragDef fragment = ` *\[([^\]]+)\]: *<?([^\s>]+)>?(?: +(title))? *(?:\n+|$)`

	// fragURL matches a bare http(s) URL. The final class keeps trailing
	// punctuation out of the link.
	fragURL fragment = `https?://[^\s<]+[^<.,:;"')\]\s]`
)

// Block-level patterns, compiled once at init. All are prefix-anchored by
// compile.
var (
	// One or more blank lines, including lines of only spaces and tabs
	// and trailing whitespace at end of input.
	reNewline = fragment(`(?:[ \t]*\n|[ \t]+$)+`).compile()

	// Indented code: runs of lines indented by four spaces.
	reCodeIndented = fragment(`(?: {4}[^\n]+\n*)+`).compile()

	// Opening fence line; the closing fence is found by scanning, since
	// it must repeat the same character at least as many times.
	reFenceOpen = fragment(" {0,3}(`{3,}|~{3,})([^\n]*)(?:\n|$)").compile()

	// Display math delimited by $$.
	reMathBlock = fragment(`\$\$[ \t]*\n?((?s:.*?))\n?[ \t]*\$\$[ \t]*(?:\n+|$)`).compile()

	reThematicBreak = fragHR.compile()

	// ATX heading: 1-6 hashes, content, optional closing hashes.
	reHeadingATX = fragment(` *(#{1,6}) +([^\n]+?) *#* *(?:\n+|$)|( *#{1,6}) *(?:\n+|$)`).compile()

	// Setext heading: a line of text underlined with = or -.
	reHeadingSetext = fragment(`([^\n]+)\n {0,3}(={2,}|-{2,}) *(?:\n+|$)`).compile()

	// Blockquote: >-prefixed lines with lazy continuation lines.
	reBlockquote = fragment(`(?: *>[^\n]*(?:\n[^\n]+)*\n*)+`).compile()

	// Per-line blockquote marker, stripped before recursing.
	reBlockquoteStrip = regexp.MustCompile(`(?m)^ *> ?`)

	// The first line of a list: optional indent, bullet, space.
	reListStart = fragment(`( {0,3})(bull) `).sub("bull", fragBull).compile()

	// An item's bullet prefix, stripped before outdenting.
	reItemBullet = fragment(`( *)(bull) +`).sub("bull", fragBull).compile()

	// A bullet marker directly at the current position, used when
	// splitting a list block into items.
	reBulletOnly = fragment(`(?:bull) `).sub("bull", fragBull).compile()

	// A blank line inside an item's source text makes the item loose.
	reLooseItem = regexp.MustCompile(`\n[ \t]*\n`)

	// Up to four leading spaces per line, removed when outdenting item
	// content.
	reOutdent = regexp.MustCompile(`(?m)^ {1,4}`)

	// Task-list checkbox at the start of outdented item content.
	reCheckbox = fragment(`\[([ xX])\] +`).compile()

	// GFM table with leading pipes, and the pipe-less variant.
	reTable = fragment(` *\|([^\n]+)\n *\|? *([-:]+[-:| ]*)\n((?: *\|[^\n]*(?:\n|$))*)\n*`).compile()
	reNPTable = fragment(` *(\S[^\n]*\|[^\n]*)\n *([-:]+[-:| ]*)\n((?:[^\n]*\|[^\n]*(?:\n|$))*)\n*`).compile()

	// Alignment cells of the table delimiter row.
	reAlignLeft   = regexp.MustCompile(`^ *:-+ *$`)
	reAlignRight  = regexp.MustCompile(`^ *-+: *$`)
	reAlignCenter = regexp.MustCompile(`^ *:-+: *$`)

	// Footnote definition with continuation lines indented by at least
	// two spaces, possibly joined across blank lines.
	reFootnoteDef = fragment(` *\[\^([^\]\s]+)\]: *([^\n]*(?:\n+ {2,}[^\n]+)*)(?:\n+|$)`).compile()

	reDefinition = fragDef.sub("title", fragTitle).compile()

	// YAML frontmatter fence at the very start of a document.
	reFrontmatter = fragment(`---[ \t]*\n((?s:.*?))\n?---[ \t]*(?:\n|$)`).compile()

	// Raw HTML blocks, one alternative per CommonMark block kind:
	// comments, CDATA, processing instructions, declarations, verbatim
	// script/pre/style/textarea, known block-level tags up to a blank
	// line, and generic standalone tags followed by a blank line.
	reHTMLBlock = fragment(` {0,3}(?:comment|cdata|pi|decl|verbatim|blocktag|generic)\n*`).
			sub("comment", `<!--(?s:.*?)-->`).
			sub("cdata", `<!\[CDATA\[(?s:.*?)\]\]>`).
			sub("pi", `<\?(?s:.*?)\?>`).
			sub("decl", `<![A-Za-z](?s:.*?)>`).
			sub("verbatim", `<(?i:script|pre|style|textarea)(?s:.*?)(?:</(?i:script|pre|style|textarea)>|\z)`).
			sub("blocktag", `</?(?i:address|article|aside|blockquote|body|caption|center|col|colgroup|dd|details|dialog|div|dl|dt|fieldset|figcaption|figure|footer|form|h1|h2|h3|h4|h5|h6|head|header|hr|html|iframe|legend|li|main|menu|nav|ol|optgroup|option|p|section|source|summary|table|tbody|td|tfoot|th|thead|title|tr|track|ul)(?:[ \t/>]|$)(?s:.*?)(?:\n{2,}|\z)`).
			sub("generic", `</?[A-Za-z][A-Za-z0-9-]*(?:"[^"]*"|'[^']*'|[^'">])*>[ \t]*(?:\n{2,}|\z)`).
			compile()

	// Exactly four spaces of indentation, removed per line of an
	// indented code block.
	reCodeStrip = regexp.MustCompile(`(?m)^ {4}`)

	// Lines that terminate a paragraph run.
	reParagraphCut = fragment(`[ \t]*(?:\n|$)|hr|( *#{1,6} )|( {0,3}(?:` + "`" + `{3,}|~{3,}))|( *>)|( {0,3}(?:bull) )`).
			sub("hr", fragHR).
			sub("bull", fragBull).
			compile()
)

// Inline-level patterns.
var (
	// Backslash escape of an ASCII punctuation character.
	reEscape = fragment("\\\\([!-/:-@\\[-`{-~])").compile()

	reDelete    = fragment(`~~(\S|\S(?s:.*?)\S)~~`).compile()
	reSpoiler   = fragment(`\|\|(\S|\S(?s:.*?)\S)\|\|`).compile()
	reMark      = fragment(`==(\S|\S(?s:.*?)\S)==`).compile()
	reUnderlineInline = fragment(`\+\+(\S|\S(?s:.*?)\S)\+\+`).compile()

	reInlineMath  = fragment(`\$([^$\n]+)\$`).compile()
	reFootnoteRef = fragment(`\[\^([^\]\s]+)\]`).compile()

	// Inline link or image: ![alt](url "title") / [text](url "title").
	reLink = fragment(`(!?)\[(label)\]\( *<?([^\s)>]*)>?(?: +(title))? *\)`).
		sub("label", fragLabel).
		sub("title", fragTitle).
		compile()

	// Reference-style link or image: [text][id] and [text][].
	reRefLink = fragment(`(!?)\[(label)\] ?\[([^\]]*)\]`).sub("label", fragLabel).compile()

	// Shortcut reference: a bare [label].
	reShortcutRef = fragment(`(!?)\[((?:\[[^\]]*\]|[^\[\]])+)\]`).compile()

	reBareURL = fragment(`(url)`).sub("url", fragURL).compile()

	reSup    = fragment(`\^([^\s^]+)\^`).compile()
	reSubscript = fragment(`~([^\s~]+)~`).compile()

	// Mention handle: sigil followed by a name.
	reHandle = fragment(`([@#~])([A-Za-z0-9][A-Za-z0-9_.-]*)`).compile()

	// Hard break: trailing double space or backslash before a newline.
	reHardBreak = fragment(` {2,}\n|\\\n`).compile()

	// Emoji shortcode such as :rocket:.
	reIcon = fragment(`:([a-zA-Z0-9_+-]+):`).compile()
)

// textStop is the canonical stop set for plain-text runs: every byte that
// can begin some other inline construct. The text catch-all and the
// paragraph pattern both defer to this single definition.
var textStop [256]bool

func init() {
	for _, b := range []byte("\\`*_~|$[!^=@#:+ ") {
		textStop[b] = true
	}
}

// startsBareURL reports whether s begins with a scheme that the bare URL
// recognizer could match.
func startsBareURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
