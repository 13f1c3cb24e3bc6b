package mdast_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparse/pkg/mdast"
)

// sampleTree builds a small document: a heading with one text child and
// a paragraph with two text children.
func sampleTree() *mdast.Token {
	heading := mdast.NewHeading(8, 1, []*mdast.Token{mdast.NewText(5, "Title")})
	para := mdast.NewParagraph(10, []*mdast.Token{
		mdast.NewText(4, "some"),
		mdast.NewText(5, " text"),
	})
	return mdast.NewRoot(18, []*mdast.Token{heading, para})
}

func TestWalk_PreOrder(t *testing.T) {
	t.Parallel()

	var order []mdast.NodeType
	err := mdast.Walk(sampleTree(), func(tok *mdast.Token) error {
		order = append(order, tok.Type)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []mdast.NodeType{
		mdast.NodeRoot,
		mdast.NodeHeading, mdast.NodeText,
		mdast.NodeParagraph, mdast.NodeText, mdast.NodeText,
	}, order)
}

func TestWalk_NilRoot(t *testing.T) {
	t.Parallel()

	err := mdast.Walk(nil, func(*mdast.Token) error {
		t.Fatal("callback should not run for a nil root")
		return nil
	})
	assert.NoError(t, err)
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("stop here")
	visits := 0

	err := mdast.Walk(sampleTree(), func(tok *mdast.Token) error {
		visits++
		if tok.Type == mdast.NodeHeading {
			return sentinel
		}
		return nil
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 2, visits, "walk should stop at the heading")
}

func TestFindByType(t *testing.T) {
	t.Parallel()

	texts := mdast.FindByType(sampleTree(), mdast.NodeText)
	require.Len(t, texts, 3)
	assert.Equal(t, "Title", texts[0].Value)
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	root := sampleTree()

	para := mdast.FindFirst(root, func(tok *mdast.Token) bool {
		return tok.Type == mdast.NodeParagraph
	})
	require.NotNil(t, para)
	assert.Equal(t, 10, para.Len)

	missing := mdast.FindFirst(root, func(tok *mdast.Token) bool {
		return tok.Type == mdast.NodeTable
	})
	assert.Nil(t, missing)
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	short := mdast.FindAll(sampleTree(), func(tok *mdast.Token) bool {
		return tok.IsInline() && tok.Len < 5
	})
	require.Len(t, short, 1)
	assert.Equal(t, "some", short[0].Value)
}
