// Package parser converts Markdown source text into an mdast token tree.
//
// The parser is a pipeline of prefix-anchored recognizers tried in a
// fixed priority order at both the block and inline level. Malformed or
// unrecognized input is always absorbed by the paragraph/text catch-alls;
// parsing never fails on well-formed UTF-8 input.
//
// Recursion depth follows Markdown nesting depth (blockquotes within
// lists within blockquotes). Input is trusted not to nest pathologically;
// no explicit depth limit is imposed.
package parser

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdparse/internal/logging"
	"github.com/yaklabco/mdparse/pkg/mdast"
)

// Parser parses Markdown into an mdast token tree. A Parser is immutable
// after New and safe for concurrent use.
type Parser struct {
	tk          tokenizer
	frontmatter bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithTrace enables debug-level tracing of recognizer matches on the
// given logger. Tracing is off by default and costs nothing when off.
func WithTrace(logger *log.Logger) Option {
	return func(p *Parser) {
		p.tk.trace = logger
	}
}

// WithTraceLevel enables tracing on a stderr logger at the given level.
// Recognizer hits are logged at debug level, so pass "debug" to see
// them; use WithTrace to supply a fully custom logger instead.
func WithTraceLevel(level string) Option {
	return func(p *Parser) {
		p.tk.trace = logging.New(level)
	}
}

// WithoutTypography disables the smart-typography pass over merged text
// tokens. It is on by default.
func WithoutTypography() Option {
	return func(p *Parser) {
		p.tk.typography = false
	}
}

// WithFrontmatter enables recognition of a YAML frontmatter block at the
// very start of the document, emitted as a yaml token.
func WithFrontmatter() Option {
	return func(p *Parser) {
		p.frontmatter = true
	}
}

// WithLangDetect enables language identification for code blocks: fence
// info-string tags are canonicalized and fences with no info string get
// a language detected from their content.
func WithLangDetect() Option {
	return func(p *Parser) {
		p.tk.langDetect = true
	}
}

// New creates a Parser with the given options.
func New(opts ...Option) *Parser {
	p := &Parser{tk: tokenizer{typography: true}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseBlock parses a complete Markdown document and returns the root of
// the token tree. Returns nil when the input has no content.
func (p *Parser) ParseBlock(src string) *mdast.Token {
	return p.tk.tokenizeBlock(src, p.frontmatter)
}

// ParseInline parses a run of inline Markdown and returns the resulting
// token sequence. Returns nil when the input has no content.
func (p *Parser) ParseInline(src string) []*mdast.Token {
	return p.tk.tokenizeInline(src)
}

// defaultParser backs the package-level convenience functions.
//
//nolint:gochecknoglobals // a shared immutable parser is intentional
var defaultParser = New()

// ParseBlock parses src with a default Parser.
func ParseBlock(src string) *mdast.Token {
	return defaultParser.ParseBlock(src)
}

// ParseInline parses src with a default Parser.
func ParseInline(src string) []*mdast.Token {
	return defaultParser.ParseInline(src)
}

// tokenizeBlock runs the block recognizer loop over src, drops the
// blank-line separator tokens, and wraps the remainder in a root token
// whose Len is the full input length. Returns nil for empty input or when
// nothing matched at all.
func (tk *tokenizer) tokenizeBlock(src string, frontmatter bool) *mdast.Token {
	if src == "" {
		return nil
	}

	var children []*mdast.Token
	rest := src

	if frontmatter {
		if tok := matchFrontmatter(rest); tok != nil {
			children = append(children, tok)
			rest = rest[tok.Len:]
		}
	}

	blocks := tk.consumeLoop(blockRecognizers, rest)
	if blocks == nil && children == nil {
		return nil
	}

	for _, tok := range blocks {
		if tok.Type == mdast.NodeNewline {
			continue
		}
		children = append(children, tok)
	}

	return mdast.NewRoot(len(src), children)
}

// tokenizeChildBlock block-tokenizes nested content (blockquote bodies,
// list items, footnote definitions) and returns the children directly,
// without the root wrapper. Returns nil when there is no content.
func (tk *tokenizer) tokenizeChildBlock(src string) []*mdast.Token {
	root := tk.tokenizeBlock(src, false)
	if root == nil {
		return nil
	}
	return root.Children
}

// tokenizeInline runs the inline recognizer loop over src, then merges
// consecutive text siblings and applies smart typography to each merged
// text token. Returns nil when the input has no content.
func (tk *tokenizer) tokenizeInline(src string) []*mdast.Token {
	if src == "" {
		return nil
	}

	tokens := tk.consumeLoop(inlineRecognizers, src)
	if tokens == nil {
		return nil
	}

	return tk.mergeText(tokens)
}

// mergeText concatenates runs of adjacent text tokens, summing their
// consumed lengths, and post-processes each merged value.
func (tk *tokenizer) mergeText(tokens []*mdast.Token) []*mdast.Token {
	out := make([]*mdast.Token, 0, len(tokens))
	var acc *mdast.Token

	flush := func() {
		if acc == nil {
			return
		}
		if tk.typography {
			acc.Value = applyTypography(acc.Value)
		}
		out = append(out, acc)
		acc = nil
	}

	for _, tok := range tokens {
		if tok.Type == mdast.NodeText {
			if acc == nil {
				acc = tok
			} else {
				acc.Value += tok.Value
				acc.Len += tok.Len
			}
			continue
		}
		flush()
		out = append(out, tok)
	}
	flush()

	return out
}
