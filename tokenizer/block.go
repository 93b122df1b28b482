package tokenizer

import (
	"github.com/npillmayer/wikitext/token"
)

// heading parses a `=…=` section heading at start-of-line. The level is the
// smaller of the opening and closing '=' runs (at most 6); surplus equals
// signs on either side fold into the content.
func (tk *Tokenizer) heading(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	eol := lineEnd(src, pos, limit)
	lead := runLen(src, pos, eol, '=')
	// trailing run, ignoring trailing blanks
	tail := eol
	for tail > pos && (src[tail-1] == ' ' || src[tail-1] == '\t') {
		tail--
	}
	trail := 0
	for tail-trail > pos && src[tail-trail-1] == '=' {
		trail++
	}
	if pos+lead > tail-trail {
		// the line is one single run of equals signs
		n := lead
		if n < 3 {
			return nil, 0, false
		}
		level := (n - 1) / 2
		if level > 6 {
			level = 6
		}
		cs, ce := pos+level, pos+n-level
		content := tk.inlineAll(cs, ce, ctx.with(inHeading))
		toks := []token.Token{&token.Heading{
			Sp: token.NewSpan(pos, eol), Level: level, Content: content,
		}}
		return tk.trailingBlanks(toks, pos+n, eol), eol, true
	}
	if trail == 0 {
		return nil, 0, false
	}
	level := lead
	if trail < level {
		level = trail
	}
	if level > 6 {
		level = 6
	}
	cs := pos + level
	ce := tail - level
	content := tk.inlineAll(cs, ce, ctx.with(inHeading))
	toks := []token.Token{&token.Heading{
		Sp: token.NewSpan(pos, eol), Level: level, Content: content,
	}}
	return toks, eol, true
}

// trailingBlanks keeps span coverage over blanks between a construct and the
// end of its line.
func (tk *Tokenizer) trailingBlanks(toks []token.Token, pos, eol int) []token.Token {
	if eol > pos {
		toks = append(toks, &token.Text{Sp: token.NewSpan(pos, eol)})
	}
	return toks
}

// horizontalRule parses a `----` rule at start-of-line. Content after the
// dashes stays on the line and is tokenized as ordinary inline content.
func (tk *Tokenizer) horizontalRule(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	if !lookingAt(src, pos, "----") {
		return nil, 0, false
	}
	eol := lineEnd(src, pos, limit)
	n := runLen(src, pos, eol, '-')
	trailing := pos+n < eol
	toks := []token.Token{&token.HorizontalRule{
		Sp: token.NewSpan(pos, pos+n), Trailing: trailing,
	}}
	npos := pos + n
	if trailing {
		rest, p, _ := tk.inline(npos, eol, ctx, true)
		toks = append(toks, rest...)
		npos = p
	}
	return toks, npos, true
}

// listItem parses one bullet line. A definition line (`;`) splits at the
// first unguarded colon into a term item and a description item. A list item
// opening a table keeps the TableStart in its content; the reducer absorbs
// the table body into it.
func (tk *Tokenizer) listItem(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	bend := pos
	for bend < limit {
		switch src[bend] {
		case '*', '#', ':', ';':
			bend++
			continue
		}
		break
	}
	if bend == pos {
		return nil, 0, false
	}
	bullets := token.NewSpan(pos, bend)
	cctx := ctx.with(inListItem)
	if tk.tableDepth > 0 {
		cctx = cctx.with(inTable)
	}
	if src[bend-1] == ';' {
		cctx = cctx.with(breakColon)
	}
	// definition-list-prefixed table: bullets directly followed by `{|`
	if lookingAt(src, bend, "{|") {
		ts, npos, ok := tk.tableStart(bend, limit, ctx)
		if ok {
			li := &token.ListItem{
				Sp:      token.NewSpan(pos, npos),
				Bullets: bullets,
				Content: ts,
			}
			return []token.Token{li}, npos, true
		}
	}
	content, p, cause := tk.inline(bend, limit, cctx, true)
	item := &token.ListItem{
		Sp:      token.NewSpan(pos, p),
		Bullets: bullets,
		Content: content,
	}
	toks := []token.Token{item}
	if cause == stopOracle && p < limit && src[p] == ':' {
		// `;term:description` — the colon opens a second item on the line
		dctx := cctx.without(breakColon)
		desc, q, _ := tk.inline(p+1, limit, dctx, true)
		toks = append(toks, &token.ListItem{
			Sp:      token.NewSpan(p, q),
			Bullets: token.NewSpan(p, p+1),
			Content: desc,
		})
		p = q
	}
	return toks, p, true
}
