package mdast

// HeadingAttrs holds attributes for heading tokens.
type HeadingAttrs struct {
	// Depth is the heading level, 1 through 6.
	Depth int
}

// ListAttrs holds attributes for list tokens.
type ListAttrs struct {
	// Ordered is true for numbered lists ("1.", "2.", ...).
	Ordered bool

	// Start is the starting number of an ordered list, nil for bullet lists.
	Start *int

	// Loose is true if any item in the list is separated by a blank line.
	Loose bool
}

// ListItemAttrs holds attributes for list item tokens.
type ListItemAttrs struct {
	// Loose is true if the item's source text contains a blank line.
	Loose bool

	// Checked reports the state of a task-list checkbox.
	// nil when the item has no checkbox.
	Checked *bool
}

// CodeAttrs holds attributes for fenced and indented code tokens.
type CodeAttrs struct {
	// Lang is the language tag from the fence info string, "" if absent.
	Lang string

	// Meta is the remainder of the info string after the language tag.
	Meta string
}

// LinkAttrs holds attributes for link and image tokens.
type LinkAttrs struct {
	// URL is the link destination.
	URL string

	// Title is the optional link title, "" if absent.
	Title string

	// Alt is the alternative text for images, "" for links.
	Alt string
}

// ReferenceType indicates the syntax form of a reference-style link or image.
type ReferenceType uint8

const (
	// RefFull represents full references: [text][label].
	RefFull ReferenceType = iota

	// RefCollapsed represents collapsed references: [label][].
	RefCollapsed

	// RefShortcut represents shortcut references: [label].
	RefShortcut
)

// String returns a human-readable name for the reference type.
func (r ReferenceType) String() string {
	switch r {
	case RefFull:
		return "full"
	case RefCollapsed:
		return "collapsed"
	case RefShortcut:
		return "shortcut"
	default:
		return "unknown"
	}
}

// ReferenceAttrs holds attributes for linkReference and imageReference tokens.
type ReferenceAttrs struct {
	// Identifier is the normalized (lowercased) definition label to resolve.
	Identifier string

	// ReferenceType records which syntax form was used. A downstream
	// resolver needs this to reconstruct the source text when the
	// identifier has no matching definition.
	ReferenceType ReferenceType
}

// DefinitionAttrs holds attributes for link reference definition tokens.
type DefinitionAttrs struct {
	// Identifier is the normalized (lowercased) definition label.
	Identifier string

	// URL is the defined destination.
	URL string

	// Title is the optional title, "" if absent.
	Title string
}

// FootnoteAttrs holds attributes for footnoteDefinition tokens.
type FootnoteAttrs struct {
	// Identifier is the footnote label without the leading caret.
	Identifier string
}

// Alignment is the column alignment of a table, derived from the
// delimiter row's colons.
type Alignment uint8

const (
	// AlignNone means the delimiter cell had no colons.
	AlignNone Alignment = iota

	// AlignLeft means a leading colon only.
	AlignLeft

	// AlignRight means a trailing colon only.
	AlignRight

	// AlignCenter means colons on both sides.
	AlignCenter
)

// String returns the mdast alignment name, "" for AlignNone.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return ""
	}
}

// TableAttrs holds attributes for table tokens.
type TableAttrs struct {
	// Align has one entry per header column.
	Align []Alignment
}

// HandleAttrs holds attributes for handle (mention) tokens.
type HandleAttrs struct {
	// Prefix is the sigil that introduced the handle: "#", "@" or "~".
	Prefix string
}
