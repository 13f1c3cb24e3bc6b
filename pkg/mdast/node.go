// Package mdast defines the Markdown AST token model produced by the parser.
//
// A parse result is a tree of Token values. Every token records the number of
// source bytes it consumed (Len), which is the bookkeeping the tokenizer
// relies on to advance through the input without dropping or duplicating
// characters.
package mdast

// NodeType classifies the type of an AST token.
type NodeType uint8

// Token types for block-level and inline-level Markdown constructs.
const (
	NodeRoot NodeType = iota

	// Block-level tokens.
	NodeNewline
	NodeCode
	NodeMath
	NodeThematicBreak
	NodeHeading
	NodeBlockquote
	NodeList
	NodeListItem
	NodeHTML
	NodeTable
	NodeTableRow
	NodeTableCell
	NodeFootnoteDefinition
	NodeDefinition
	NodeParagraph
	NodeYAML

	// Inline-level tokens.
	NodeText
	NodeInlineCode
	NodeStrong
	NodeEmphasis
	NodeSpoiler
	NodeDelete
	NodeInlineMath
	NodeFootnoteReference
	NodeLink
	NodeImage
	NodeLinkReference
	NodeImageReference
	NodeSup
	NodeSub
	NodeMark
	NodeHandle
	NodeUnderline
	NodeBreak
	NodeIcon
)

// String returns the mdast type name for the node type.
func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "unknown"
}

var nodeTypeNames = [...]string{
	NodeRoot:               "root",
	NodeNewline:            "newline",
	NodeCode:               "code",
	NodeMath:               "math",
	NodeThematicBreak:      "thematicBreak",
	NodeHeading:            "heading",
	NodeBlockquote:         "blockquote",
	NodeList:               "list",
	NodeListItem:           "listItem",
	NodeHTML:               "html",
	NodeTable:              "table",
	NodeTableRow:           "tableRow",
	NodeTableCell:          "tableCell",
	NodeFootnoteDefinition: "footnoteDefinition",
	NodeDefinition:         "definition",
	NodeParagraph:          "paragraph",
	NodeYAML:               "yaml",
	NodeText:               "text",
	NodeInlineCode:         "inlineCode",
	NodeStrong:             "strong",
	NodeEmphasis:           "emphasis",
	NodeSpoiler:            "spoiler",
	NodeDelete:             "delete",
	NodeInlineMath:         "inlineMath",
	NodeFootnoteReference:  "footnoteReference",
	NodeLink:               "link",
	NodeImage:              "image",
	NodeLinkReference:      "linkReference",
	NodeImageReference:     "imageReference",
	NodeSup:                "sup",
	NodeSub:                "sub",
	NodeMark:               "mark",
	NodeHandle:             "handle",
	NodeUnderline:          "underline",
	NodeBreak:              "break",
	NodeIcon:               "icon",
}

// Token is a single node in the Markdown AST.
//
// Len is the number of source bytes the token consumed, including its own
// delimiters and any nested content. After a recognizer returns a token, the
// caller must advance exactly Len bytes through the remaining input.
//
// WARNING: Len is a byte length, not a rune count. Do not use it for visible
// text length calculations.
type Token struct {
	// Type identifies what kind of token this is.
	Type NodeType

	// Len is the number of source bytes consumed to produce this token.
	Len int

	// Value is the literal text payload for leaf tokens (text, code, html,
	// math, inlineCode, inlineMath, footnoteReference, icon, handle,
	// thematicBreak, yaml).
	Value string

	// Children is the ordered list of child tokens for container types.
	Children []*Token

	// Heading holds attributes for NodeHeading.
	Heading *HeadingAttrs

	// List holds attributes for NodeList.
	List *ListAttrs

	// ListItem holds attributes for NodeListItem.
	ListItem *ListItemAttrs

	// Code holds attributes for NodeCode.
	Code *CodeAttrs

	// Link holds attributes for NodeLink and NodeImage.
	Link *LinkAttrs

	// Reference holds attributes for NodeLinkReference and NodeImageReference.
	Reference *ReferenceAttrs

	// Definition holds attributes for NodeDefinition.
	Definition *DefinitionAttrs

	// Footnote holds attributes for NodeFootnoteDefinition.
	Footnote *FootnoteAttrs

	// Table holds attributes for NodeTable.
	Table *TableAttrs

	// Handle holds attributes for NodeHandle.
	Handle *HandleAttrs
}

// IsBlock returns true if this is a block-level token.
func (t *Token) IsBlock() bool {
	switch t.Type {
	case NodeRoot, NodeNewline, NodeCode, NodeMath, NodeThematicBreak,
		NodeHeading, NodeBlockquote, NodeList, NodeListItem, NodeHTML,
		NodeTable, NodeTableRow, NodeTableCell, NodeFootnoteDefinition,
		NodeDefinition, NodeParagraph, NodeYAML:
		return true
	default:
		return false
	}
}

// IsInline returns true if this is an inline-level token.
func (t *Token) IsInline() bool {
	return !t.IsBlock()
}

// HasChildren returns true if this token has any children.
func (t *Token) HasChildren() bool {
	return len(t.Children) > 0
}

// Append adds children to the token.
func (t *Token) Append(children ...*Token) {
	t.Children = append(t.Children, children...)
}
