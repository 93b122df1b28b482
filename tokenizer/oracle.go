package tokenizer

// breaksInline is the inline-break oracle: it decides, for the character at
// pos, whether the current position terminates the actively open construct.
// It is consulted before every plain character inside inline content and must
// not allocate. The decision table was reconstructed from the behavior real
// documents depend on; individual conditions are authoritative even where
// they look arbitrary.
func (tk *Tokenizer) breaksInline(pos int, ctx Context) bool {
	src := tk.src
	switch src[pos] {
	case '=':
		if ctx.has(inArrow) && byteAt(src, pos+1) == '>' {
			return true
		}
		if ctx.has(breakEqual) {
			return true
		}
		return ctx.has(inHeading) && tk.headingCloseAhead(pos)
	case '|':
		if ctx.f&(inTplArg|inCellAttrs|inLinkTarget|inLinkDesc) != 0 {
			return true
		}
		if ctx.has(inTable) {
			switch byteAt(src, pos+1) {
			case '[', ']', '|', '}':
				return true
			}
			return lookingAt(src, pos+1, "{{!}}")
		}
		return false
	case '!':
		return ctx.has(inTHCell) && !ctx.has(inTplArg) &&
			ctx.c.open != OpenTemplate && !ctx.c.thNewline &&
			byteAt(src, pos+1) == '!'
	case '{':
		if ctx.has(inCellAttrs) && lookingAt(src, pos, "{{!}}") {
			return true
		}
		if ctx.has(inTable) &&
			(lookingAt(src, pos, "{{!}}{{!}}") || lookingAt(src, pos, "{{!}}")) {
			return true
		}
		return false
	case '}':
		switch ctx.c.open {
		case OpenTemplate, OpenParameter:
			return byteAt(src, pos+1) == '}'
		case OpenLangVariant:
			return byteAt(src, pos+1) == '-'
		}
		return false
	case ':':
		return ctx.has(breakColon) && !ctx.has(inExtLink) && !ctx.has(inLinkDesc) &&
			ctx.c.open != OpenLangVariant && ctx.c.open != OpenTemplate
	case ';':
		return ctx.has(breakSemicolon)
	case '\r', '\n':
		if !ctx.has(inTable) {
			return false
		}
		if ctx.has(inLinkDesc) {
			return true
		}
		return tk.tableLineAhead(pos)
	case '[':
		return ctx.has(inCellAttrs) && byteAt(src, pos+1) == '['
	case '-':
		return ctx.has(inCellAttrs) && byteAt(src, pos+1) == '{'
	case ']':
		if ctx.has(inExtLink) {
			return true
		}
		return ctx.c.open == OpenLink && byteAt(src, pos+1) == ']'
	}
	return false
}

// headingCloseAhead reports whether pos starts a run of '=' followed by
// nothing but spaces and tabs up to the end of the line.
func (tk *Tokenizer) headingCloseAhead(pos int) bool {
	src := tk.src
	i := pos
	for i < len(src) && src[i] == '=' {
		i++
	}
	if i == pos {
		return false
	}
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	return i >= len(src) || src[i] == '\n' || src[i] == '\r'
}

// tableLineAhead reports whether the non-whitespace run following the newline
// at pos begins a table line ('!' or '|').
func (tk *Tokenizer) tableLineAhead(pos int) bool {
	src := tk.src
	i := pos
	for i < len(src) {
		switch src[i] {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		}
		break
	}
	return i < len(src) && (src[i] == '!' || src[i] == '|')
}
