package tokenizer

import (
	"github.com/npillmayer/wikitext/token"
)

// Table markup is line oriented: `{|` opens a table, and while a table is
// open every line starting (after indentation) with `|` or `!` is a table
// line. Cell content is not nested under the cell token; it follows flat in
// the stream, which lets malformed tables degrade without restructuring.

// tableStart parses a `{|` opener with its attribute list up to end of line.
func (tk *Tokenizer) tableStart(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	if !lookingAt(src, pos, "{|") {
		return nil, 0, false
	}
	eol := lineEnd(src, pos, limit)
	attrs := tk.attrList(pos+2, eol, ctx.with(inTable))
	tk.tableDepth++
	toks := []token.Token{&token.TableStart{Sp: token.NewSpan(pos, eol), Attrs: attrs}}
	toks, npos := tk.consumeNewline(toks, eol, limit)
	return toks, npos, true
}

// tableLine parses one line of an open table: `|}` end, `|-` row, `|+`
// caption, or a run of `|`/`!` cells. Anything else is not a table line and
// falls back to ordinary in-table content.
func (tk *Tokenizer) tableLine(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	i := pos
	for i < limit && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	if i >= limit {
		return nil, 0, false
	}
	switch {
	case lookingAt(src, i, "|}"):
		if tk.tableDepth > 0 {
			tk.tableDepth--
		}
		toks := []token.Token{&token.TableEnd{Sp: token.NewSpan(pos, i+2)}}
		bctx := ctx
		if tk.tableDepth > 0 {
			bctx = bctx.with(inTable)
		}
		rest, p, _ := tk.inline(i+2, limit, bctx, true)
		toks = append(toks, rest...)
		toks, npos := tk.consumeNewline(toks, p, limit)
		return toks, npos, true
	case lookingAt(src, i, "|-"):
		j := i + 1
		j += runLen(src, j, limit, '-')
		eol := lineEnd(src, j, limit)
		attrs := tk.attrList(j, eol, ctx.with(inTable))
		toks := []token.Token{&token.TableRow{Sp: token.NewSpan(pos, eol), Attrs: attrs}}
		toks, npos := tk.consumeNewline(toks, eol, limit)
		return toks, npos, true
	case lookingAt(src, i, "|+"):
		return tk.tableCaption(pos, i, limit, ctx)
	case src[i] == '|' || src[i] == '!':
		return tk.tableCells(pos, i, limit, ctx)
	}
	return nil, 0, false
}

// tableCaption parses a `|+` caption line. The caption's content follows the
// TableCaption token flat in the stream.
func (tk *Tokenizer) tableCaption(pos, i, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	body := i + 2
	tctx := ctx.with(inTable)
	var attrs []token.Argument
	if k, ok := tk.cellAttrSplit(body, lineEnd(src, body, limit)); ok {
		attrs = tk.attrList(body, k, tctx.with(inCellAttrs))
		body = k + 1
	}
	caption := &token.TableCaption{Sp: token.NewSpan(pos, body), Attrs: attrs}
	content, p, _ := tk.inline(body, limit, tctx.with(inTableCaption), true)
	toks := append([]token.Token{caption}, content...)
	toks, npos := tk.consumeNewline(toks, p, limit)
	return toks, npos, true
}

// tableCells parses one `|`- or `!`-marked cell line, splitting further cells
// off at `||` and `!!` separators. Each cell contributes a TableData or
// TableHeading token followed by its content, flat.
func (tk *Tokenizer) tableCells(pos, i, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	tctx := ctx.with(inTable)
	var toks []token.Token
	th := src[i] == '!'
	cur := i
	mlen := 1
	for {
		body := cur + mlen
		cellctx := tctx
		if th {
			cellctx = cellctx.with(inTHCell)
			cellctx.c.thNewline = false
		}
		var attrs []token.Argument
		if k, ok := tk.cellAttrSplit(body, lineEnd(src, body, limit)); ok {
			attrs = tk.attrList(body, k, tctx.with(inCellAttrs))
			body = k + 1
		}
		if th {
			toks = append(toks, &token.TableHeading{Sp: token.NewSpan(cur, body), Attrs: attrs})
		} else {
			toks = append(toks, &token.TableData{Sp: token.NewSpan(cur, body), Attrs: attrs})
		}
		for {
			content, p, cause := tk.inline(body, limit, cellctx, true)
			toks = append(toks, content...)
			body = p
			if cause == stopEOF {
				return toks, limit, true
			}
			if src[p] == '\n' || src[p] == '\r' {
				out, npos := tk.consumeNewline(toks, p, limit)
				return out, npos, true
			}
			// oracle stop mid-line
			if src[p] == '|' && byteAt(src, p+1) == '|' {
				cur, mlen = p, 2
				break
			}
			if src[p] == '!' && byteAt(src, p+1) == '!' {
				cur, mlen, th = p, 2, true
				break
			}
			// a stop that is not a cell separator stays literal
			toks = append(toks, &token.Text{Sp: token.NewSpan(p, p+1)})
			body = p + 1
		}
	}
}

// cellAttrSplit scans a cell body line segment for the single `|` that
// separates an attribute list from cell content. Constructs that carry their
// own pipes (wikilinks, lang-conversion blocks, `||` separators, the `{{!}}`
// pipe escape) veto the split.
func (tk *Tokenizer) cellAttrSplit(pos, eol int) (int, bool) {
	src := tk.src
	for i := pos; i < eol; i++ {
		switch src[i] {
		case '|':
			if byteAt(src, i+1) == '|' {
				return 0, false
			}
			return i, true
		case '[':
			if byteAt(src, i+1) == '[' {
				return 0, false
			}
		case '-':
			if byteAt(src, i+1) == '{' {
				return 0, false
			}
		case '{':
			if lookingAt(src, i, "{{!}}") {
				return 0, false
			}
		}
	}
	return 0, false
}
