package tokenizer

import (
	"github.com/npillmayer/wikitext/token"
)

// Rules that may be re-invoked at the same position under backtracking are
// memoized, keyed by rule identity, cursor position and the context fields
// that can affect their outcome. Entries are scoped to one parse invocation
// and dropped afterwards; positions are meaningless across buffers.

type ruleID uint8

const (
	ruleParameter ruleID = iota
	ruleTemplate
	ruleLangVariant
	ruleLink
)

// memoMask drops the break-permission flags that are neutralized inside
// bracketed constructs by the open-construct cell, so equivalent invocations
// share an entry.
const memoMask = ^(breakColon | breakSemicolon | breakEqual | inArrow)

type memoKey struct {
	rule ruleID
	pos  int
	f    flags
	open OpenKind
}

type memoEntry struct {
	toks []token.Token
	end  int
	ok   bool
	open OpenKind // cell value after the rule ran
}

// memoized runs fn once per (rule, pos, context) and replays its outcome,
// including the rule's effect on the open-construct cell, on later hits.
func (tk *Tokenizer) memoized(rule ruleID, pos int, ctx Context,
	fn func() ([]token.Token, int, bool)) ([]token.Token, int, bool) {
	//
	key := memoKey{rule: rule, pos: pos, f: ctx.f & memoMask, open: ctx.c.open}
	if e, hit := tk.memo[key]; hit {
		ctx.c.open = e.open
		return e.toks, e.end, e.ok
	}
	toks, end, ok := fn()
	tk.memo[key] = memoEntry{toks: toks, end: end, ok: ok, open: ctx.c.open}
	return toks, end, ok
}
