package mdast

import "encoding/json"

// MarshalJSON serializes the token using mdast-compatible field names.
// Optional scalar attributes (lang, title, start, checked, align entries)
// are emitted as JSON null when absent, matching what a host-side bridge
// consuming the tree expects.
func (t *Token) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 8)
	m["type"] = t.Type.String()
	m["len"] = t.Len

	if hasValue(t.Type) {
		if t.Type == NodeIcon {
			m["emoji"] = t.Value
		} else {
			m["value"] = t.Value
		}
	}

	if isContainer(t.Type) {
		children := t.Children
		if children == nil {
			children = []*Token{}
		}
		m["children"] = children
	}

	t.marshalAttrs(m)

	return json.Marshal(m)
}

func (t *Token) marshalAttrs(m map[string]any) {
	switch {
	case t.Heading != nil:
		m["depth"] = t.Heading.Depth
	case t.List != nil:
		m["ordered"] = t.List.Ordered
		m["start"] = nullableInt(t.List.Start)
		m["loose"] = t.List.Loose
	case t.ListItem != nil:
		m["loose"] = t.ListItem.Loose
		m["checked"] = nullableBool(t.ListItem.Checked)
	case t.Code != nil:
		m["lang"] = nullableString(t.Code.Lang)
		m["meta"] = nullableString(t.Code.Meta)
	case t.Definition != nil:
		m["identifier"] = t.Definition.Identifier
		m["url"] = t.Definition.URL
		m["title"] = nullableString(t.Definition.Title)
	case t.Footnote != nil:
		m["identifier"] = t.Footnote.Identifier
	case t.Table != nil:
		align := make([]any, len(t.Table.Align))
		for i, a := range t.Table.Align {
			align[i] = nullableString(a.String())
		}
		m["align"] = align
	case t.Handle != nil:
		m["prefix"] = t.Handle.Prefix
	default:
		// Reference and Link attrs can coexist on imageReference tokens.
		if t.Reference != nil {
			m["identifier"] = t.Reference.Identifier
			m["referenceType"] = t.Reference.ReferenceType.String()
		}
		if t.Link != nil {
			if t.Reference == nil {
				m["url"] = t.Link.URL
				m["title"] = nullableString(t.Link.Title)
			}
			if t.Type == NodeImage || t.Type == NodeImageReference {
				m["alt"] = t.Link.Alt
			}
		}
	}
}

// hasValue reports whether tokens of this type carry a literal payload.
func hasValue(typ NodeType) bool {
	switch typ {
	case NodeText, NodeCode, NodeHTML, NodeMath, NodeInlineCode,
		NodeInlineMath, NodeFootnoteReference, NodeIcon, NodeHandle,
		NodeThematicBreak, NodeYAML:
		return true
	default:
		return false
	}
}

// isContainer reports whether tokens of this type hold child tokens.
func isContainer(typ NodeType) bool {
	switch typ {
	case NodeRoot, NodeHeading, NodeParagraph, NodeBlockquote, NodeList,
		NodeListItem, NodeTable, NodeTableRow, NodeTableCell,
		NodeFootnoteDefinition, NodeLink, NodeLinkReference, NodeEmphasis,
		NodeStrong, NodeDelete, NodeSpoiler, NodeUnderline, NodeMark,
		NodeSup, NodeSub:
		return true
	default:
		return false
	}
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}

func nullableBool(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}
