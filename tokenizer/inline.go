package tokenizer

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/npillmayer/wikitext/token"
)

// stopCause reports why an inline run ended.
type stopCause int8

const (
	stopEOF stopCause = iota
	stopNewline
	stopOracle
)

// inline tokenizes inline content from pos up to limit. The oracle is
// consulted before every character; construct openers are dispatched on their
// first byte, and any opener that fails to parse falls through to literal
// text, so the run always makes progress. When stopAtNL is set the run ends
// (without consuming) at a line break.
func (tk *Tokenizer) inline(pos, limit int, ctx Context, stopAtNL bool) ([]token.Token, int, stopCause) {
	src := tk.src
	var toks []token.Token
	textStart := pos
	flush := func(end int) {
		if end > textStart {
			toks = append(toks, &token.Text{Sp: token.NewSpan(textStart, end)})
		}
	}
	for pos < limit {
		if tk.breaksInline(pos, ctx) {
			flush(pos)
			return toks, pos, stopOracle
		}
		b := src[pos]
		if b == '\n' || b == '\r' {
			if stopAtNL {
				flush(pos)
				return toks, pos, stopNewline
			}
			if ctx.has(inTHCell) {
				ctx.c.thNewline = true
			}
			pos++
			continue
		}
		var (
			sub  []token.Token
			npos int
			ok   bool
		)
		switch b {
		case '<':
			sub, npos, ok = tk.angle(pos, limit, ctx)
		case '{':
			sub, npos, ok = tk.curly(pos, limit, ctx)
		case '[':
			sub, npos, ok = tk.brackets(pos, limit, ctx)
		case '-':
			sub, npos, ok = tk.langVariant(pos, limit, ctx)
		case '\'':
			sub, npos, ok = tk.quoteRun(pos, limit)
		case '&':
			sub, npos, ok = tk.entity(pos, limit)
		case '_':
			sub, npos, ok = tk.behaviorSwitch(pos, limit)
		case 0x7f:
			sub, npos, ok = tk.stripMarker(pos, limit)
		default:
			if isWordByte(b) && !isWordByte(byteAt(src, pos-1)) {
				sub, npos, ok = tk.autolink(pos, limit, ctx)
			}
		}
		if ok {
			flush(pos)
			toks = append(toks, sub...)
			pos = npos
			textStart = pos
			continue
		}
		pos++
	}
	flush(limit)
	return toks, limit, stopEOF
}

// quoteRun resolves one contiguous apostrophe run into raw text-style tokens:
// 2 is italic, 3 bold, 5 bold-italic; a run of 4 or of more than 5 peels the
// excess off the front as literal text. A single apostrophe stays plain text.
func (tk *Tokenizer) quoteRun(pos, limit int) ([]token.Token, int, bool) {
	src := tk.src
	n := runLen(src, pos, limit, '\'')
	if n < 2 {
		return nil, 0, false
	}
	var toks []token.Token
	start := pos
	switch {
	case n == 4:
		toks = append(toks, &token.Text{Sp: token.NewSpan(start, start+1)})
		start++
	case n > 5:
		toks = append(toks, &token.Text{Sp: token.NewSpan(start, start+n-5)})
		start += n - 5
	}
	sp := token.NewSpan(start, pos+n)
	switch sp.Len() {
	case 2:
		toks = append(toks, &token.TextStyle{Sp: sp, Style: token.Italic})
	case 3:
		toks = append(toks, &token.TextStyle{Sp: sp, Style: token.Bold,
			Class: boldClass(src, start)})
	case 5:
		toks = append(toks, &token.TextStyle{Sp: sp, Style: token.BoldItalic})
	}
	return toks, pos + n, true
}

// boldClass records what precedes a bold run: a space, a single non-space
// character after a space (the "orphan" case), or neither.
func boldClass(src []byte, at int) token.BoldClass {
	switch {
	case byteAt(src, at-1) == ' ':
		return token.BoldSpace
	case at >= 2 && byteAt(src, at-2) == ' ':
		return token.BoldOrphan
	}
	return token.BoldPlain
}

// entity recognizes a named or numeric character reference. The standard
// entity table decides validity: anything it cannot decode stays literal.
func (tk *Tokenizer) entity(pos, limit int) ([]token.Token, int, bool) {
	src := tk.src
	j := pos + 1
	for j < limit && j-pos <= 32 && isEntityByte(src[j]) {
		j++
	}
	if j <= pos+1 || j >= limit || src[j] != ';' {
		return nil, 0, false
	}
	ref := string(src[pos : j+1])
	decoded := html.UnescapeString(ref)
	if decoded == ref {
		return nil, 0, false
	}
	sp := token.NewSpan(pos, j+1)
	return []token.Token{&token.Entity{Sp: sp, Decoded: decoded}}, j + 1, true
}

func isEntityByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '#'
}

// behaviorSwitch recognizes `__WORD__` magic words known to the site
// configuration.
func (tk *Tokenizer) behaviorSwitch(pos, limit int) ([]token.Token, int, bool) {
	src := tk.src
	if !lookingAt(src, pos, "__") {
		return nil, 0, false
	}
	j := pos + 2
	for j < limit && (src[j] >= 'A' && src[j] <= 'Z') {
		j++
	}
	if j == pos+2 || !lookingAt(src, j, "__") {
		return nil, 0, false
	}
	name := string(src[pos+2 : j])
	if !tk.cfg.IsBehaviorSwitch(name) {
		return nil, 0, false
	}
	sp := token.NewSpan(pos, j+2)
	return []token.Token{&token.BehaviorSwitch{Sp: sp, Name: name}}, j + 2, true
}

// stripMarker recognizes the opaque placeholders a previous expansion stage
// leaves behind. Only active when tokenizing already-expanded text.
func (tk *Tokenizer) stripMarker(pos, limit int) ([]token.Token, int, bool) {
	if !tk.opts.Expanded {
		return nil, 0, false
	}
	src := tk.src
	for j := pos + 1; j < limit && j-pos < 128; j++ {
		if src[j] == 0x7f {
			body := string(src[pos+1 : j])
			if !strings.Contains(strings.ToLower(body), "uniq") {
				return nil, 0, false
			}
			sp := token.NewSpan(pos, j+1)
			return []token.Token{&token.StripMarker{Sp: sp}}, j + 1, true
		}
	}
	return nil, 0, false
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
