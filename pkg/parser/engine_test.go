package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparse/pkg/mdast"
)

// prefixRecognizer matches a fixed prefix and emits a text token for it.
func prefixRecognizer(name, prefix string) recognizer {
	return recognizer{name, func(_ *tokenizer, src string) *mdast.Token {
		if len(src) < len(prefix) || src[:len(prefix)] != prefix {
			return nil
		}
		return mdast.NewText(len(prefix), prefix)
	}}
}

func TestTryFirst_FirstMatchWins(t *testing.T) {
	t.Parallel()

	tk := &tokenizer{}
	recs := []recognizer{
		prefixRecognizer("ab", "ab"),
		prefixRecognizer("a", "a"),
	}

	tok := tk.tryFirst(recs, "abc")
	require.NotNil(t, tok)
	assert.Equal(t, "ab", tok.Value, "the earlier recognizer takes priority")

	tok = tk.tryFirst(recs, "axc")
	require.NotNil(t, tok)
	assert.Equal(t, "a", tok.Value)

	assert.Nil(t, tk.tryFirst(recs, "xyz"))
}

func TestConsumeLoop_AdvancesByLen(t *testing.T) {
	t.Parallel()

	tk := &tokenizer{}
	recs := []recognizer{
		prefixRecognizer("ab", "ab"),
		prefixRecognizer("c", "c"),
	}

	tokens := tk.consumeLoop(recs, "abcab")
	require.Len(t, tokens, 3)
	assert.Equal(t, []string{"ab", "c", "ab"}, []string{
		tokens[0].Value, tokens[1].Value, tokens[2].Value,
	})
}

func TestConsumeLoop_NilOnImmediateNoMatch(t *testing.T) {
	t.Parallel()

	tk := &tokenizer{}
	recs := []recognizer{prefixRecognizer("a", "a")}

	assert.Nil(t, tk.consumeLoop(recs, "zzz"))
}

func TestConsumeLoop_StopsAtNoMatch(t *testing.T) {
	t.Parallel()

	tk := &tokenizer{}
	recs := []recognizer{prefixRecognizer("a", "a")}

	tokens := tk.consumeLoop(recs, "aaz")
	assert.Len(t, tokens, 2, "loop ends when nothing matches the remainder")
}

func TestConsumeLoop_RejectsZeroLengthTokens(t *testing.T) {
	t.Parallel()

	tk := &tokenizer{}
	recs := []recognizer{{"empty", func(_ *tokenizer, _ string) *mdast.Token {
		return mdast.NewText(0, "")
	}}}

	// A recognizer that never advances must not loop forever.
	assert.Nil(t, tk.consumeLoop(recs, "abc"))
}

func TestConsumeLoop_BlockTokensCoverTheSource(t *testing.T) {
	t.Parallel()

	// Before the facade filters the blank-line separators, the raw token
	// stream must account for every input byte: the lens sum to exactly
	// the source length, never under or over.
	docs := []string{
		"# Title\n\nParagraph one.\nStill paragraph one.\n",
		"   \n\n  \t  ",
		"> quoted\n> more\n\nafter\n",
		"- a\n- b\n  - nested\n\n1. one\n2. two\n",
		"```go\ncode\n```\n\n    indented\n",
		"| a | b |\n| - | - |\n| 1 | 2 |\n",
		"[ref]: /url \"t\"\n\n[^fn]: note\n",
		"---\n\n$$\nx\n$$\n\n##\n",
		"<div>\nraw\n</div>\n\ntail\n",
		"Setext\n======\n\nlazy fence ```\nno trailing newline",
	}

	tk := &tokenizer{typography: true}
	for _, src := range docs {
		tokens := tk.consumeLoop(blockRecognizers, src)

		sum := 0
		for _, tok := range tokens {
			sum += tok.Len
		}
		assert.Equal(t, len(src), sum, "src %q", src)
	}
}

func TestRecognizerOrder(t *testing.T) {
	t.Parallel()

	blockIdx := make(map[string]int, len(blockRecognizers))
	for i, rec := range blockRecognizers {
		blockIdx[rec.name] = i
	}
	inlineIdx := make(map[string]int, len(inlineRecognizers))
	for i, rec := range inlineRecognizers {
		inlineIdx[rec.name] = i
	}

	assert.Equal(t, 0, blockIdx["newline"])
	assert.Less(t, blockIdx["code"], blockIdx["fences"], "indented code wins over fences")
	assert.Less(t, blockIdx["thematicBreak"], blockIdx["heading"], "--- is never a setext underline of nothing")
	assert.Less(t, blockIdx["thematicBreak"], blockIdx["list"], "* * * is never a list")
	assert.Equal(t, len(blockRecognizers)-1, blockIdx["paragraph"], "paragraph is the catch-all")

	assert.Equal(t, 0, inlineIdx["escape"])
	assert.Less(t, inlineIdx["strong"], inlineIdx["emphasis"], "** must not be torn into two *")
	assert.Less(t, inlineIdx["delete"], inlineIdx["sub"], "~~ must not be torn into two ~")
	assert.Less(t, inlineIdx["sub"], inlineIdx["handle"], "~x~ is subscript, not a channel mention")
	assert.Equal(t, len(inlineRecognizers)-1, inlineIdx["text"], "text is the catch-all")
}
