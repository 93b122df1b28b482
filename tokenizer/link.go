package tokenizer

import (
	"bytes"

	"github.com/npillmayer/wikitext/token"
)

// brackets dispatches a '[' character: `[[` opens a wikilink, a single
// bracket followed by a known protocol opens an external link. A failed
// wikilink degrades by consuming its opener and clearing the open-construct
// cell; a failed external link leaves the bracket literal.
func (tk *Tokenizer) brackets(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	if lookingAt(src, pos, "[[") {
		bctx := ctx.branch()
		toks, npos, ok := tk.memoized(ruleLink, pos, bctx, func() ([]token.Token, int, bool) {
			return tk.wikilink(pos, limit, bctx)
		})
		if ok {
			ctx.commit(bctx)
			return toks, npos, true
		}
		ctx.c.open = OpenNone
		ctx.c.misnested++
		return []token.Token{&token.Text{Sp: token.NewSpan(pos, pos+2)}}, pos + 2, true
	}
	return tk.extLink(pos, limit, ctx)
}

// wikilink parses `[[target|text]]` plus a trailing letter run merged into
// the link. Strict: targets stay on one line and must be free of structural
// punctuation, and the `]]` terminator is required.
func (tk *Tokenizer) wikilink(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	if tk.depth >= tk.opts.MaxDepth {
		return nil, 0, false
	}
	tk.depth++
	defer func() { tk.depth-- }()

	cctx := ctx.without(bodyMask)
	prev := cctx.c.open
	cctx.c.open = OpenLink
	actx := cctx.with(inLinkDesc)

	target, i, cause := tk.inline(pos+2, limit, cctx.with(inLinkTarget), true)
	if cause == stopNewline || cause == stopEOF {
		return nil, 0, false
	}
	if !validLinkTarget(src, target) {
		return nil, 0, false
	}
	var content []token.Argument
	for i < limit && src[i] == '|' {
		arg, npos := tk.templateArg(i, limit, actx)
		content = append(content, arg)
		i = npos
	}
	if !lookingAt(src, i, "]]") {
		return nil, 0, false
	}
	cctx.c.open = prev
	end := i + 2
	trail := token.Null
	if n := tk.cfg.MatchTrail(src, end); n > 0 {
		trail = token.NewSpan(end, end+n)
		end += n
	}
	lnk := &token.Link{
		Sp:      token.NewSpan(pos, end),
		Target:  target,
		Content: content,
		Trail:   trail,
	}
	return []token.Token{lnk}, end, true
}

// validLinkTarget rejects targets whose literal text contains bytes that can
// never occur in a page title. Structure tokens (templates, entities) inside
// the target are fine; stray brackets and braces are not.
func validLinkTarget(src []byte, target []token.Token) bool {
	for _, t := range target {
		txt, isText := t.(*token.Text)
		if !isText {
			continue
		}
		seg := txt.Sp.Slice(src)
		if bytes.IndexAny(seg, "[]{}<>") >= 0 {
			return false
		}
	}
	return true
}

// extLink parses a bracketed external link `[proto://host label]`. The URL
// part is a raw byte scan, never wikitext.
func (tk *Tokenizer) extLink(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	plen := tk.cfg.MatchProtocol(src, pos+1)
	if plen == 0 {
		return nil, 0, false
	}
	i := pos + 1 + plen
	ustart := pos + 1
	for i < limit && isURLByte(src[i]) {
		if src[i] == '\'' && byteAt(src, i+1) == '\'' {
			break
		}
		i++
	}
	if i == ustart+plen {
		return nil, 0, false
	}
	target := token.NewSpan(ustart, i)
	for i < limit && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	cctx := ctx.without(bodyMask).with(inExtLink)
	content, p, _ := tk.inline(i, limit, cctx, true)
	if p >= limit || src[p] != ']' {
		return nil, 0, false
	}
	ext := &token.ExternalLink{
		Sp:      token.NewSpan(pos, p+1),
		Target:  target,
		Content: content,
	}
	return []token.Token{ext}, p + 1, true
}

// autolink recognizes bare URLs and magic links (RFC, PMID, ISBN) in running
// text. Only consulted at a word boundary.
func (tk *Tokenizer) autolink(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	if ctx.has(inLinkTarget) || ctx.has(inTag) {
		return nil, 0, false
	}
	if toks, npos, ok := tk.magicLink(pos, limit); ok {
		return toks, npos, true
	}
	src := tk.src
	plen := tk.cfg.MatchProtocol(src, pos)
	if plen == 0 {
		return nil, 0, false
	}
	i := pos + plen
	for i < limit && isURLByte(src[i]) {
		if src[i] == '\'' && byteAt(src, i+1) == '\'' {
			break
		}
		i++
	}
	// trailing punctuation reads as prose, not as part of the URL
	for i > pos+plen {
		c := src[i-1]
		if c == ',' || c == '.' || c == ';' || c == ':' || c == '!' || c == '?' {
			i--
			continue
		}
		if c == ')' && bytes.IndexByte(src[pos:i], '(') < 0 {
			i--
			continue
		}
		break
	}
	if i == pos+plen {
		return nil, 0, false
	}
	sp := token.NewSpan(pos, i)
	return []token.Token{&token.Autolink{Sp: sp, Target: sp}}, i, true
}

// magicLink matches the free-standing RFC/PMID/ISBN syntaxes enabled in the
// site configuration.
func (tk *Tokenizer) magicLink(pos, limit int) ([]token.Token, int, bool) {
	src := tk.src
	ml := tk.cfg.MagicLinks
	switch {
	case ml.RFC && lookingAt(src, pos, "RFC"):
		return tk.numericMagic(pos, pos+3, limit)
	case ml.PMID && lookingAt(src, pos, "PMID"):
		return tk.numericMagic(pos, pos+4, limit)
	case ml.ISBN && lookingAt(src, pos, "ISBN"):
		return tk.isbnMagic(pos, pos+4, limit)
	}
	return nil, 0, false
}

// numericMagic expects spaces and a digit run after the keyword.
func (tk *Tokenizer) numericMagic(pos, kw, limit int) ([]token.Token, int, bool) {
	src := tk.src
	i := kw
	for i < limit && src[i] == ' ' {
		i++
	}
	if i == kw {
		return nil, 0, false
	}
	d := i
	for i < limit && src[i] >= '0' && src[i] <= '9' {
		i++
	}
	if i == d || isWordByte(byteAt(src, i)) {
		return nil, 0, false
	}
	sp := token.NewSpan(pos, i)
	return []token.Token{&token.Autolink{Sp: sp, Target: sp}}, i, true
}

// isbnMagic expects a space and a 10- or 13-digit ISBN, dashes allowed, an
// X check digit allowed in last position.
func (tk *Tokenizer) isbnMagic(pos, kw, limit int) ([]token.Token, int, bool) {
	src := tk.src
	i := kw
	for i < limit && src[i] == ' ' {
		i++
	}
	if i == kw {
		return nil, 0, false
	}
	digits := 0
	start := i
	for i < limit {
		c := src[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '-':
			// separator
		case (c == 'X' || c == 'x') && digits == 9:
			digits++
		default:
			goto done
		}
		i++
	}
done:
	if i == start || (digits != 10 && digits != 13) || isWordByte(byteAt(src, i)) {
		return nil, 0, false
	}
	sp := token.NewSpan(pos, i)
	return []token.Token{&token.Autolink{Sp: sp, Target: sp}}, i, true
}

// isURLByte admits the printable ASCII range minus the characters that end a
// URL in running text.
func isURLByte(c byte) bool {
	if c <= ' ' || c >= 0x7f {
		return false
	}
	switch c {
	case '<', '>', '[', ']', '"', '|', '{', '}':
		return false
	}
	return true
}
