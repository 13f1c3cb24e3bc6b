package mdast

// Per-variant constructors. Each takes only the fields its token type
// actually carries, so no caller ever merges a generic bag of attributes.

// NewRoot creates a root token spanning srcLen source bytes.
func NewRoot(srcLen int, children []*Token) *Token {
	return &Token{Type: NodeRoot, Len: srcLen, Children: children}
}

// NewText creates a plain text token.
func NewText(length int, value string) *Token {
	return &Token{Type: NodeText, Len: length, Value: value}
}

// NewNewline creates a blank-line separator token.
func NewNewline(length int) *Token {
	return &Token{Type: NodeNewline, Len: length}
}

// NewHeading creates a heading token with the given depth (1-6).
func NewHeading(length, depth int, children []*Token) *Token {
	return &Token{Type: NodeHeading, Len: length, Children: children, Heading: &HeadingAttrs{Depth: depth}}
}

// NewParagraph creates a paragraph token.
func NewParagraph(length int, children []*Token) *Token {
	return &Token{Type: NodeParagraph, Len: length, Children: children}
}

// NewBlockquote creates a blockquote token.
func NewBlockquote(length int, children []*Token) *Token {
	return &Token{Type: NodeBlockquote, Len: length, Children: children}
}

// NewCode creates a code block token.
func NewCode(length int, value, lang, meta string) *Token {
	return &Token{Type: NodeCode, Len: length, Value: value, Code: &CodeAttrs{Lang: lang, Meta: meta}}
}

// NewMath creates a math block token.
func NewMath(length int, value string) *Token {
	return &Token{Type: NodeMath, Len: length, Value: value}
}

// NewThematicBreak creates a thematic break token.
func NewThematicBreak(length int, value string) *Token {
	return &Token{Type: NodeThematicBreak, Len: length, Value: value}
}

// NewHTML creates a raw HTML block token.
func NewHTML(length int, value string) *Token {
	return &Token{Type: NodeHTML, Len: length, Value: value}
}

// NewList creates a list token. start is nil for unordered lists.
func NewList(length int, ordered bool, start *int, loose bool, items []*Token) *Token {
	return &Token{Type: NodeList, Len: length, Children: items, List: &ListAttrs{Ordered: ordered, Start: start, Loose: loose}}
}

// NewListItem creates a list item token. checked is nil when the item has
// no task-list checkbox.
func NewListItem(length int, loose bool, checked *bool, children []*Token) *Token {
	return &Token{Type: NodeListItem, Len: length, Children: children, ListItem: &ListItemAttrs{Loose: loose, Checked: checked}}
}

// NewTable creates a table token with per-column alignment.
func NewTable(length int, align []Alignment, rows []*Token) *Token {
	return &Token{Type: NodeTable, Len: length, Children: rows, Table: &TableAttrs{Align: align}}
}

// NewTableRow creates a table row token.
func NewTableRow(length int, cells []*Token) *Token {
	return &Token{Type: NodeTableRow, Len: length, Children: cells}
}

// NewTableCell creates a table cell token.
func NewTableCell(length int, children []*Token) *Token {
	return &Token{Type: NodeTableCell, Len: length, Children: children}
}

// NewDefinition creates a link reference definition token.
func NewDefinition(length int, identifier, url, title string) *Token {
	return &Token{Type: NodeDefinition, Len: length, Definition: &DefinitionAttrs{Identifier: identifier, URL: url, Title: title}}
}

// NewFootnoteDefinition creates a footnote definition token.
func NewFootnoteDefinition(length int, identifier string, children []*Token) *Token {
	return &Token{Type: NodeFootnoteDefinition, Len: length, Children: children, Footnote: &FootnoteAttrs{Identifier: identifier}}
}

// NewFootnoteReference creates a footnote reference token.
func NewFootnoteReference(length int, value string) *Token {
	return &Token{Type: NodeFootnoteReference, Len: length, Value: value}
}

// NewYAML creates a frontmatter token holding the raw YAML body.
func NewYAML(length int, value string) *Token {
	return &Token{Type: NodeYAML, Len: length, Value: value}
}

// NewInlineCode creates an inline code span token.
func NewInlineCode(length int, value string) *Token {
	return &Token{Type: NodeInlineCode, Len: length, Value: value}
}

// NewInlineMath creates an inline math token.
func NewInlineMath(length int, value string) *Token {
	return &Token{Type: NodeInlineMath, Len: length, Value: value}
}

// NewStrong creates a strong emphasis token.
func NewStrong(length int, children []*Token) *Token {
	return &Token{Type: NodeStrong, Len: length, Children: children}
}

// NewEmphasis creates an emphasis token.
func NewEmphasis(length int, children []*Token) *Token {
	return &Token{Type: NodeEmphasis, Len: length, Children: children}
}

// NewSpoiler creates a spoiler token.
func NewSpoiler(length int, children []*Token) *Token {
	return &Token{Type: NodeSpoiler, Len: length, Children: children}
}

// NewDelete creates a strikethrough token.
func NewDelete(length int, children []*Token) *Token {
	return &Token{Type: NodeDelete, Len: length, Children: children}
}

// NewUnderline creates an underline token.
func NewUnderline(length int, children []*Token) *Token {
	return &Token{Type: NodeUnderline, Len: length, Children: children}
}

// NewMark creates a highlight token.
func NewMark(length int, children []*Token) *Token {
	return &Token{Type: NodeMark, Len: length, Children: children}
}

// NewSup creates a superscript token.
func NewSup(length int, children []*Token) *Token {
	return &Token{Type: NodeSup, Len: length, Children: children}
}

// NewSub creates a subscript token.
func NewSub(length int, children []*Token) *Token {
	return &Token{Type: NodeSub, Len: length, Children: children}
}

// NewLink creates an inline link token.
func NewLink(length int, url, title string, children []*Token) *Token {
	return &Token{Type: NodeLink, Len: length, Children: children, Link: &LinkAttrs{URL: url, Title: title}}
}

// NewImage creates an inline image token.
func NewImage(length int, url, title, alt string) *Token {
	return &Token{Type: NodeImage, Len: length, Link: &LinkAttrs{URL: url, Title: title, Alt: alt}}
}

// NewLinkReference creates a reference-style link token.
func NewLinkReference(length int, identifier string, refType ReferenceType, children []*Token) *Token {
	return &Token{Type: NodeLinkReference, Len: length, Children: children, Reference: &ReferenceAttrs{Identifier: identifier, ReferenceType: refType}}
}

// NewImageReference creates a reference-style image token.
func NewImageReference(length int, identifier string, refType ReferenceType, alt string) *Token {
	return &Token{
		Type: NodeImageReference, Len: length,
		Reference: &ReferenceAttrs{Identifier: identifier, ReferenceType: refType},
		Link:      &LinkAttrs{Alt: alt},
	}
}

// NewHandle creates a mention token such as @user, #tag or ~channel.
func NewHandle(length int, value, prefix string) *Token {
	return &Token{Type: NodeHandle, Len: length, Value: value, Handle: &HandleAttrs{Prefix: prefix}}
}

// NewIcon creates an emoji shortcode token. value is the emoji name
// without the surrounding colons.
func NewIcon(length int, value string) *Token {
	return &Token{Type: NodeIcon, Len: length, Value: value}
}

// NewBreak creates a hard line break token.
func NewBreak(length int) *Token {
	return &Token{Type: NodeBreak, Len: length}
}
