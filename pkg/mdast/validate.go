package mdast

import "fmt"

// ValidateTree checks the consumption-completeness property of a parse
// result: the Len values of the root's children must sum to the root's Len,
// which in turn must equal the length of the source the tree was parsed
// from. Blank-line separators are filtered out of the root's children by
// the parser, so the root records the full source length itself and the
// children are allowed to sum to less, never more.
//
// Returns nil when the tree is consistent.
func ValidateTree(root *Token, srcLen int) error {
	if root == nil {
		if srcLen == 0 {
			return nil
		}
		return fmt.Errorf("nil tree for %d bytes of source", srcLen)
	}

	if root.Type != NodeRoot {
		return fmt.Errorf("tree root has type %s, want root", root.Type)
	}

	if root.Len != srcLen {
		return fmt.Errorf("root len %d does not match source length %d", root.Len, srcLen)
	}

	sum := 0
	for _, child := range root.Children {
		if child.Len <= 0 {
			return fmt.Errorf("%s token with non-positive len %d", child.Type, child.Len)
		}
		sum += child.Len
	}

	if sum > srcLen {
		return fmt.Errorf("children consume %d bytes, more than the %d available", sum, srcLen)
	}

	return nil
}

// ValidateInline checks that a sequence of inline tokens exactly covers
// srcLen bytes of source. Unlike the block level there is no filtering at
// the inline level, so the sum must be exact.
func ValidateInline(tokens []*Token, srcLen int) error {
	sum := 0
	for _, tok := range tokens {
		if tok.Len <= 0 {
			return fmt.Errorf("%s token with non-positive len %d", tok.Type, tok.Len)
		}
		sum += tok.Len
	}

	if sum != srcLen {
		return fmt.Errorf("inline tokens consume %d bytes, want exactly %d", sum, srcLen)
	}

	return nil
}
