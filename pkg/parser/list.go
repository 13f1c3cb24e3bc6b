package parser

import (
	"strconv"
	"strings"

	"github.com/yaklabco/mdparse/pkg/mdast"
)

// matchList consumes a whole list block: the region is scanned out line
// by line, split into per-item substrings at sibling bullet boundaries,
// and each item's outdented content is recursively block-tokenized.
//
// If the bullet prefix of any item fails to re-match, the whole list is
// abandoned and the input falls through to the paragraph catch-all.
func matchList(tk *tokenizer, src string) *mdast.Token {
	if !reListStart.MatchString(src) {
		return nil
	}

	block := scanListBlock(src)
	items := splitListItems(block)
	if items == nil {
		return nil
	}

	var (
		ordered  bool
		start    *int
		loose    bool
		children []*mdast.Token
	)

	for i, item := range items {
		bm := reItemBullet.FindStringSubmatch(item)
		if bm == nil {
			// The bullet that delimited this item no longer matches.
			// Abandon the construct rather than guess.
			return nil
		}

		bullet := bm[2]
		if i == 0 && len(bullet) > 1 {
			ordered = true
			if n, err := strconv.Atoi(bullet[:len(bullet)-1]); err == nil {
				start = &n
			}
		}

		itemLoose := hasInnerBlankLine(item, i == len(items)-1)
		loose = loose || itemLoose

		content := reOutdent.ReplaceAllString(item[len(bm[0]):], "")
		content, checked := stripCheckbox(content)

		children = append(children,
			mdast.NewListItem(len(item), itemLoose, checked, tk.tokenizeChildBlock(content)))
	}

	return mdast.NewList(len(block), ordered, start, loose, children)
}

// scanListBlock returns the prefix of src that belongs to the list: it
// extends through blank lines and continuation lines, and ends before a
// thematic break or at a blank line followed by a line that is neither
// indented nor a bullet.
func scanListBlock(src string) string {
	pos := 0
	afterBlank := false

	for pos < len(src) {
		rest := src[pos:]

		line, next := splitLine(rest)
		if strings.TrimSpace(line) == "" {
			afterBlank = true
			pos += next
			continue
		}

		if pos > 0 {
			if reThematicBreak.MatchString(rest) {
				break
			}
			if afterBlank && line[0] != ' ' && !reListStart.MatchString(rest) {
				break
			}
		}

		afterBlank = false
		pos += next
	}

	return src[:pos]
}

// splitListItems cuts the list block into contiguous per-item substrings.
// A new item starts at any line carrying a bullet at the current item's
// exact indent; deeper bullets are nested content, and the first line
// always opens the first item. Returns nil when the block does not start
// with a bullet line.
func splitListItems(block string) []string {
	var (
		items  []string
		start  int
		indent string
		pos    int
	)

	first := true
	for pos < len(block) {
		line, next := splitLine(block[pos:])

		if first {
			m := reItemBullet.FindStringSubmatch(line)
			if m == nil {
				return nil
			}
			indent = m[1]
			first = false
		} else if bulletAtIndent(line, indent) {
			items = append(items, block[start:pos])
			start = pos
		}

		pos += next
	}

	return append(items, block[start:])
}

// bulletAtIndent reports whether line opens a sibling item: exactly the
// given indent followed directly by a bullet marker and a space.
func bulletAtIndent(line, indent string) bool {
	if !strings.HasPrefix(line, indent) {
		return false
	}
	return reBulletOnly.MatchString(line[len(indent):])
}

// splitLine returns the first line of s without its newline, and the
// number of bytes to advance past it.
func splitLine(s string) (line string, next int) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i], i + 1
	}
	return s, len(s)
}

// hasInnerBlankLine reports whether the item's original source text
// contains a blank line, which makes the item loose. A blank line
// trailing the last item closes the list and does not count.
func hasInnerBlankLine(item string, last bool) bool {
	if last {
		item = strings.TrimRight(item, " \t\n")
	}
	return reLooseItem.MatchString(item)
}

// stripCheckbox removes a leading task-list checkbox from outdented item
// content. checked is nil when there is no checkbox.
func stripCheckbox(content string) (string, *bool) {
	m := reCheckbox.FindStringSubmatch(content)
	if m == nil {
		return content, nil
	}

	checked := m[1] == "x" || m[1] == "X"
	return content[len(m[0]):], &checked
}
