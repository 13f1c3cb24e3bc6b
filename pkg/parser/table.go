package parser

import (
	"strings"

	"github.com/yaklabco/mdparse/pkg/mdast"
)

// matchTable consumes a GFM table: a header row and an alignment
// delimiter row are mandatory, body rows optional. Both the piped form
// and the pipe-less form are recognized.
func matchTable(tk *tokenizer, src string) *mdast.Token {
	m := reTable.FindStringSubmatch(src)
	if m == nil {
		m = reNPTable.FindStringSubmatch(src)
	}
	if m == nil {
		return nil
	}

	align := parseAlignRow(m[2])
	headerCells := splitCells(m[1])
	if len(headerCells) != len(align) {
		// A header/delimiter column mismatch is not a table.
		return nil
	}

	rows := []*mdast.Token{tk.tableRow(m[1], headerCells)}
	for _, line := range strings.Split(strings.TrimRight(m[3], "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := padCells(splitCells(line), len(align))
		rows = append(rows, tk.tableRow(line, cells))
	}

	return mdast.NewTable(len(m[0]), align, rows)
}

// tableRow builds a tableRow token whose cells are inline-tokenized.
func (tk *tokenizer) tableRow(line string, cells []string) *mdast.Token {
	tokens := make([]*mdast.Token, 0, len(cells))
	for _, cell := range cells {
		tokens = append(tokens, mdast.NewTableCell(len(cell), tk.tokenizeInline(strings.TrimSpace(cell))))
	}
	// The row spans its source line plus the newline that ended it.
	return mdast.NewTableRow(len(line)+1, tokens)
}

// parseAlignRow derives per-column alignment from the delimiter row's
// colons: both sides center, leading only left, trailing only right,
// plain dashes none.
func parseAlignRow(row string) []mdast.Alignment {
	cells := splitCells(row)
	align := make([]mdast.Alignment, len(cells))

	for i, cell := range cells {
		switch {
		case reAlignCenter.MatchString(cell):
			align[i] = mdast.AlignCenter
		case reAlignRight.MatchString(cell):
			align[i] = mdast.AlignRight
		case reAlignLeft.MatchString(cell):
			align[i] = mdast.AlignLeft
		default:
			align[i] = mdast.AlignNone
		}
	}

	return align
}

// splitCells splits a table row on unescaped pipes. A backslash-escaped
// pipe is cell content, not a separator. Outer pipes are stripped first.
func splitCells(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")
	if strings.HasSuffix(row, "|") && !strings.HasSuffix(row, `\|`) {
		row = row[:len(row)-1]
	}

	var (
		cells []string
		cur   strings.Builder
	)

	for i := 0; i < len(row); i++ {
		switch {
		case row[i] == '\\' && i+1 < len(row) && row[i+1] == '|':
			cur.WriteByte('|')
			i++
		case row[i] == '|':
			cells = append(cells, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(row[i])
		}
	}

	return append(cells, cur.String())
}

// padCells pads row to width with empty cells, or truncates it, so every
// body row has exactly the header's column count.
func padCells(row []string, width int) []string {
	if len(row) > width {
		return row[:width]
	}
	for len(row) < width {
		row = append(row, "")
	}
	return row
}
