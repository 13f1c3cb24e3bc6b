package parser

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdparse/internal/logging"
	"github.com/yaklabco/mdparse/pkg/mdast"
)

// recognizer attempts to match one Markdown construct at the start of the
// remaining input. A nil return means no match, which is normal control
// flow, never an error: the engine simply tries the next recognizer.
type recognizer struct {
	name  string
	match func(tk *tokenizer, src string) *mdast.Token
}

// tokenizer carries per-parse configuration through the recognizer
// pipeline. It holds no parse state of its own: recognizers receive the
// remaining input explicitly and report consumption through Token.Len, so
// a single tokenizer is safe to share across concurrent parses.
type tokenizer struct {
	trace      *log.Logger
	typography bool
	langDetect bool
}

// tryFirst tries each recognizer in priority order against src and
// returns the first match. Order is correctness-critical: escape must
// precede text, strong must precede emphasis, and the text/paragraph
// catch-alls must come last.
func (tk *tokenizer) tryFirst(recs []recognizer, src string) *mdast.Token {
	for i := range recs {
		tok := recs[i].match(tk, src)
		if tok == nil {
			continue
		}
		if tk.trace != nil {
			tk.trace.Debug("matched",
				logging.FieldRecognizer, recs[i].name,
				logging.FieldTokenType, tok.Type.String(),
				logging.FieldLen, tok.Len,
				logging.FieldRemaining, len(src)-tok.Len)
		}
		return tok
	}
	return nil
}

// consumeLoop repeatedly applies tryFirst to the remaining input,
// advancing the cursor by each token's Len, until the input is exhausted.
//
// Returns nil when the very first attempt yields no token, signalling to
// the caller that this chunk is not decomposable at this level. A no-match
// after at least one token terminates the loop; by construction every
// remaining chunk starts with a catch-all match, so in practice the loop
// runs to completion once anything matches.
func (tk *tokenizer) consumeLoop(recs []recognizer, src string) []*mdast.Token {
	var out []*mdast.Token

	for len(src) > 0 {
		tok := tk.tryFirst(recs, src)
		if tok == nil || tok.Len <= 0 {
			// A zero-length token would never advance the cursor; treat
			// it the same as no match rather than loop forever.
			break
		}
		out = append(out, tok)
		src = src[tok.Len:]
	}

	return out
}
