package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparse/pkg/mdast"
	"github.com/yaklabco/mdparse/pkg/parser"
)

func TestParseBlock_BulletList(t *testing.T) {
	t.Parallel()

	src := "* one\n* two\n"
	tok := parseOne(t, src)

	assert.Equal(t, mdast.NodeList, tok.Type)
	require.NotNil(t, tok.List)
	assert.False(t, tok.List.Ordered)
	assert.Nil(t, tok.List.Start)
	assert.False(t, tok.List.Loose)
	assert.Equal(t, len(src), tok.Len)

	require.Len(t, tok.Children, 2)
	for i, item := range tok.Children {
		assert.Equal(t, mdast.NodeListItem, item.Type)
		require.Len(t, item.Children, 1, "item %d", i)
		assert.Equal(t, mdast.NodeParagraph, item.Children[0].Type)
	}
}

func TestParseBlock_OrderedListStart(t *testing.T) {
	t.Parallel()

	tok := parseOne(t, "3. three\n4. four\n")

	require.NotNil(t, tok.List)
	assert.True(t, tok.List.Ordered)
	require.NotNil(t, tok.List.Start)
	assert.Equal(t, 3, *tok.List.Start, "the first bullet's number is the start")
	require.Len(t, tok.Children, 2)
}

func TestParseBlock_ListItemLensPartitionTheBlock(t *testing.T) {
	t.Parallel()

	src := "- alpha\n- beta\n- gamma\n"
	tok := parseOne(t, src)

	sum := 0
	for _, item := range tok.Children {
		sum += item.Len
	}
	assert.Equal(t, tok.Len, sum, "item lens cover the list block exactly")
}

func TestParseBlock_TaskList(t *testing.T) {
	t.Parallel()

	tok := parseOne(t, "- [x] done\n- [ ] todo\n")

	require.Len(t, tok.Children, 2)

	done := tok.Children[0].ListItem
	require.NotNil(t, done)
	require.NotNil(t, done.Checked)
	assert.True(t, *done.Checked)

	todo := tok.Children[1].ListItem
	require.NotNil(t, todo.Checked)
	assert.False(t, *todo.Checked)
}

func TestParseBlock_ListWithoutCheckboxesHasNilChecked(t *testing.T) {
	t.Parallel()

	tok := parseOne(t, "- plain\n")
	assert.Nil(t, tok.Children[0].ListItem.Checked)
}

func TestParseBlock_LooseList(t *testing.T) {
	t.Parallel()

	tok := parseOne(t, "- a\n\n- b\n")

	assert.True(t, tok.List.Loose, "a blank line between items makes the list loose")
	require.Len(t, tok.Children, 2)
}

func TestParseBlock_TightListStaysTight(t *testing.T) {
	t.Parallel()

	tok := parseOne(t, "- a\n- b\n\n")

	assert.False(t, tok.List.Loose, "a blank line after the last item closes the list")
}

func TestParseBlock_NestedList(t *testing.T) {
	t.Parallel()

	tok := parseOne(t, "- a\n  - b\n")

	require.Len(t, tok.Children, 1, "the indented bullet nests, it does not open a sibling")
	item := tok.Children[0]
	require.Len(t, item.Children, 2)
	assert.Equal(t, mdast.NodeParagraph, item.Children[0].Type)
	assert.Equal(t, mdast.NodeList, item.Children[1].Type)
}

func TestParseBlock_ListEndsAtThematicBreak(t *testing.T) {
	t.Parallel()

	root := parser.ParseBlock("- a\n- b\n---\n")
	require.NotNil(t, root)
	require.Len(t, root.Children, 2)
	assert.Equal(t, mdast.NodeList, root.Children[0].Type)
	assert.Equal(t, mdast.NodeThematicBreak, root.Children[1].Type)
}

func TestParseBlock_ListEndsAtUnindentedText(t *testing.T) {
	t.Parallel()

	root := parser.ParseBlock("- a\n\nplain paragraph\n")
	require.NotNil(t, root)
	require.Len(t, root.Children, 2)
	assert.Equal(t, mdast.NodeList, root.Children[0].Type)
	assert.Equal(t, mdast.NodeParagraph, root.Children[1].Type)
}
