package tokenizer

import (
	"github.com/npillmayer/wikitext/token"
)

// attrList parses an HTML-ish attribute list within [pos,limit): a sequence
// of `name` or `name=value` entries, values optionally single- or
// double-quoted. Names and values are tokenized with the inline rules so
// templates, comments and entities inside attributes survive as structure.
func (tk *Tokenizer) attrList(pos, limit int, ctx Context) []token.Argument {
	src := tk.src
	actx := ctx.with(inTag)
	var attrs []token.Argument
	i := pos
	for i < limit {
		for i < limit && isSpaceByte(src[i]) {
			i++
		}
		if i >= limit {
			break
		}
		start := i
		for i < limit && src[i] != '=' && !isSpaceByte(src[i]) {
			i++
		}
		arg := token.Argument{
			Sp:     token.NewSpan(start, i),
			Tokens: tk.inlineAll(start, i, actx),
			Eq:     -1,
			Term:   -1,
		}
		if i < limit && src[i] == '=' {
			i++
			vstart, vend := i, i
			if i < limit && (src[i] == '"' || src[i] == '\'') {
				q := src[i]
				i++
				vstart = i
				for i < limit && src[i] != q {
					i++
				}
				vend = i
				if i < limit {
					i++
				}
			} else {
				for i < limit && !isSpaceByte(src[i]) {
					i++
				}
				vend = i
			}
			arg.Eq = len(arg.Tokens)
			arg.Tokens = append(arg.Tokens, tk.inlineAll(vstart, vend, actx)...)
			arg.Sp = token.NewSpan(start, i)
		}
		attrs = append(attrs, arg)
	}
	return attrs
}

// inlineAll tokenizes [pos,limit) exhaustively, turning oracle stops into
// literal text so a bounded segment always covers its full range.
func (tk *Tokenizer) inlineAll(pos, limit int, ctx Context) []token.Token {
	var toks []token.Token
	for pos < limit {
		sub, npos, cause := tk.inline(pos, limit, ctx, false)
		toks = append(toks, sub...)
		pos = npos
		if cause == stopOracle && pos < limit {
			toks = append(toks, &token.Text{Sp: token.NewSpan(pos, pos+1)})
			pos++
		}
	}
	return toks
}
