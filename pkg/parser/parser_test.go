package parser_test

import (
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparse/pkg/mdast"
	"github.com/yaklabco/mdparse/pkg/parser"
)

func TestParseBlock_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.Nil(t, parser.ParseBlock(""))
	assert.Nil(t, parser.ParseInline(""))
}

func TestParseBlock_WhitespaceOnlyInput(t *testing.T) {
	t.Parallel()

	src := "   \n\n  \t  "
	root := parser.ParseBlock(src)

	require.NotNil(t, root)
	assert.Equal(t, mdast.NodeRoot, root.Type)
	assert.Equal(t, len(src), root.Len)
	assert.Empty(t, root.Children, "blank lines leave no visible blocks")
}

func TestParseBlock_RootSpansTheWholeSource(t *testing.T) {
	t.Parallel()

	// Every block construct at least once; each document must be fully
	// consumed with no bytes dropped or double-counted.
	docs := []string{
		"# Title\n\nParagraph one.\nStill paragraph one.\n",
		"> quoted\n> more\n\nafter\n",
		"- a\n- b\n  - nested\n\n1. one\n2. two\n",
		"```go\ncode\n```\n\n    indented\n",
		"| a | b |\n| - | - |\n| 1 | 2 |\n",
		"[ref]: /url \"t\"\n\n[^fn]: note\n",
		"---\n\n$$\nx\n$$\n",
		"<div>\nraw\n</div>\n\ntail\n",
		"Word **bold** _em_ `code` [l](/u) ![i](/p) :tada: @who\n",
		"no trailing newline",
	}

	for _, src := range docs {
		root := parser.ParseBlock(src)
		require.NotNil(t, root, "src %q", src)
		assert.NoError(t, mdast.ValidateTree(root, len(src)), "src %q", src)
	}
}

func TestParseInline_TokensConsumeExactly(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"just text",
		"**a** *b* `c` ~~d~~ ||e|| ==f== ++g++ ^h^ ~i~",
		`\* escaped and "quoted" -- text...`,
		"[full][id] [col][] [short] https://x.dev [l](/u \"t\")",
		"trailing break  \nnext",
		"héllo ✓ мир",
	}

	for _, src := range inputs {
		tokens := parser.ParseInline(src)
		assert.NoError(t, mdast.ValidateInline(tokens, len(src)), "src %q", src)
	}
}

func TestParser_ConcurrentUse(t *testing.T) {
	t.Parallel()

	p := parser.New()
	src := "# Heading\n\n- item **bold**\n- item _em_\n\n> quote\n"

	want := p.ParseBlock(src)
	require.NotNil(t, want)

	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := p.ParseBlock(src)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestParser_WithTraceDoesNotChangeTheResult(t *testing.T) {
	t.Parallel()

	logger := log.New(io.Discard)
	logger.SetLevel(log.DebugLevel)

	src := "# H\n\npara with **bold**\n"
	plain := parser.ParseBlock(src)
	traced := parser.New(parser.WithTrace(logger)).ParseBlock(src)

	assert.Equal(t, plain, traced)
}

func TestParser_WithTraceLevelDoesNotChangeTheResult(t *testing.T) {
	t.Parallel()

	src := "- item\n\n> quote\n"
	plain := parser.ParseBlock(src)

	// Error level silences the debug-level recognizer trace entirely.
	traced := parser.New(parser.WithTraceLevel("error")).ParseBlock(src)
	assert.Equal(t, plain, traced)
}

func TestParser_WithLangDetect(t *testing.T) {
	t.Parallel()

	p := parser.New(parser.WithLangDetect())

	root := p.ParseBlock("```golang\nx := 1\n```\n")
	require.NotNil(t, root)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "go", root.Children[0].Code.Lang, "info-string aliases are canonicalized")

	root = p.ParseBlock("```\n#!/bin/bash\necho hi\n```\n")
	require.Len(t, root.Children, 1)
	assert.Equal(t, "bash", root.Children[0].Code.Lang, "bare fences get a detected language")
}

func TestParser_LangDetectOffByDefault(t *testing.T) {
	t.Parallel()

	root := parser.ParseBlock("```golang\nx := 1\n```\n")
	require.Len(t, root.Children, 1)
	assert.Equal(t, "golang", root.Children[0].Code.Lang, "the info string is kept verbatim")
}

func TestParseBlock_TreeIsWalkable(t *testing.T) {
	t.Parallel()

	root := parser.ParseBlock("# T\n\npara **bold** text\n")
	require.NotNil(t, root)

	strongs := mdast.FindByType(root, mdast.NodeStrong)
	require.Len(t, strongs, 1)
	require.Len(t, strongs[0].Children, 1)
	assert.Equal(t, "bold", strongs[0].Children[0].Value)
}
