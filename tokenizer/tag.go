package tokenizer

import (
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/npillmayer/wikitext/token"
)

// angle dispatches on a '<' character: HTML comment, extension tag with
// verbatim body, annotation tag, inclusion-control tag, or plain HTML-ish
// tag. Anything unrecognized fails and the '<' stays literal text.
func (tk *Tokenizer) angle(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	if lookingAt(src, pos, "<!--") {
		return tk.comment(pos, limit)
	}
	name, attrStart, attrEnd, closing, selfClosing, end, ok := tk.parseTag(pos, limit)
	if !ok {
		return nil, 0, false
	}
	lower := strings.ToLower(name)
	switch lower {
	case "noinclude", "includeonly", "onlyinclude":
		return tk.inclusionTag(lower, closing, selfClosing, pos, end)
	}
	sp := token.NewSpan(pos, end)
	if tk.cfg.IsExtensionTag(lower) {
		if closing {
			// a stray extension close tag has nothing to close
			return nil, 0, false
		}
		attrs := tk.attrList(attrStart, attrEnd, ctx)
		if selfClosing {
			ext := &token.Extension{Sp: sp, Name: lower, Attrs: attrs}
			return []token.Token{ext}, end, true
		}
		contentEnd, tagEnd, found := findEndTag(src, end, lower)
		if !found {
			// unterminated extension tag: the open tag itself becomes text
			return []token.Token{&token.Text{Sp: sp}}, end, true
		}
		ext := &token.Extension{
			Sp:         token.NewSpan(pos, tagEnd),
			Name:       lower,
			Attrs:      attrs,
			Content:    token.NewSpan(end, contentEnd),
			HasContent: true,
		}
		return []token.Token{ext}, tagEnd, true
	}
	if tk.cfg.IsAnnotationTag(lower) {
		if closing {
			return []token.Token{&token.EndAnnotation{Sp: sp, Name: lower}}, end, true
		}
		attrs := tk.attrList(attrStart, attrEnd, ctx)
		ann := &token.StartAnnotation{Sp: sp, Name: lower, Attrs: attrs}
		return []token.Token{ann}, end, true
	}
	if atom.Lookup([]byte(lower)) == 0 {
		return nil, 0, false
	}
	if closing {
		return []token.Token{&token.EndTag{Sp: sp, Name: lower}}, end, true
	}
	attrs := tk.attrList(attrStart, attrEnd, ctx)
	tag := &token.StartTag{Sp: sp, Name: lower, Attrs: attrs, SelfClosing: selfClosing}
	return []token.Token{tag}, end, true
}

// comment consumes `<!--` through `-->`; an unterminated comment runs to the
// end of input.
func (tk *Tokenizer) comment(pos, limit int) ([]token.Token, int, bool) {
	src := tk.src
	end := limit
	if i := indexFold(src, pos+4, "-->"); i >= 0 && i+3 <= limit {
		end = i + 3
	}
	return []token.Token{&token.Comment{Sp: token.NewSpan(pos, end)}}, end, true
}

// parseTag scans `<name attrs>` or `</name>` starting at the '<'. It returns
// the tag name, the attribute segment bounds, and the position just past '>'.
func (tk *Tokenizer) parseTag(pos, limit int) (name string, attrStart, attrEnd int, closing, selfClosing bool, end int, ok bool) {
	src := tk.src
	i := pos + 1
	if i < limit && src[i] == '/' {
		closing = true
		i++
	}
	ns := i
	for i < limit && isTagNameByte(src[i]) {
		i++
	}
	if i == ns || !isLetterByte(src[ns]) {
		return "", 0, 0, false, false, 0, false
	}
	name = string(src[ns:i])
	attrStart = i
	var quote byte
	for i < limit {
		c := src[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			attrEnd = i
			if !closing && i > attrStart && src[i-1] == '/' {
				selfClosing = true
				attrEnd = i - 1
			}
			return name, attrStart, attrEnd, closing, selfClosing, i + 1, true
		case c == '<':
			return "", 0, 0, false, false, 0, false
		}
		i++
	}
	return "", 0, 0, false, false, 0, false
}

// inclusionTag applies <noinclude>/<includeonly>/<onlyinclude> semantics for
// the current inclusion mode. Tags themselves never produce tokens; a branch
// excluded by the mode is skipped wholesale.
func (tk *Tokenizer) inclusionTag(name string, closing, selfClosing bool, pos, end int) ([]token.Token, int, bool) {
	skipBody := false
	switch name {
	case "noinclude":
		skipBody = tk.opts.Transcluded
	case "includeonly":
		skipBody = !tk.opts.Transcluded
	case "onlyinclude":
		// handled by region selection before tokenizing
	}
	if closing || selfClosing || !skipBody {
		return []token.Token{}, end, true
	}
	if _, tagEnd, found := findEndTag(tk.src, end, name); found {
		tracer().Debugf("dropping <%s> branch, %d bytes", name, tagEnd-end)
		return []token.Token{}, tagEnd, true
	}
	// no close tag: the excluded branch runs to end of input
	return []token.Token{}, len(tk.src), true
}

func isLetterByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
