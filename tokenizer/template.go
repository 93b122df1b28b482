package tokenizer

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/npillmayer/wikitext/token"
)

// bodyMask clears the break permissions an enclosing construct granted; a
// freshly opened bracket construct starts with a clean slate, the oracle
// consults the open-construct cell instead.
const bodyMask = breakColon | breakSemicolon | breakEqual | inArrow

// curly dispatches a '{' run. The longest recognized opener wins: `{{{` is
// tried as a parameter before `{{` is tried as a template. A failed parameter
// sheds one lead brace as literal text, so the remaining run retries as a
// template one position later and `{{{x}}` reads as `{` plus a template. When
// a two-brace opener fails it degrades to literal text and the open-construct
// cell is cleared, so enclosing constructs unwind one opener at a time.
func (tk *Tokenizer) curly(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	n := runLen(src, pos, limit, '{')
	if n < 2 || ctx.has(noTemplates) {
		return nil, 0, false
	}
	if n >= 3 {
		bctx := ctx.branch()
		toks, npos, ok := tk.memoized(ruleParameter, pos, bctx, func() ([]token.Token, int, bool) {
			return tk.parameter(pos, limit, bctx)
		})
		if ok {
			ctx.commit(bctx)
			return toks, npos, true
		}
		return []token.Token{&token.Text{Sp: token.NewSpan(pos, pos+1)}}, pos + 1, true
	}
	bctx := ctx.branch()
	toks, npos, ok := tk.memoized(ruleTemplate, pos, bctx, func() ([]token.Token, int, bool) {
		return tk.template(pos, limit, bctx)
	})
	if ok {
		ctx.commit(bctx)
		return toks, npos, true
	}
	ctx.c.open = OpenNone
	ctx.c.misnested++
	return []token.Token{&token.Text{Sp: token.NewSpan(pos, pos+2)}}, pos + 2, true
}

// template parses `{{target|arg|name=value}}`. Strict: no `}}` terminator
// means failure, degradation is the dispatcher's business.
func (tk *Tokenizer) template(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	if tk.depth >= tk.opts.MaxDepth {
		return nil, 0, false
	}
	tk.depth++
	defer func() { tk.depth-- }()

	cctx := ctx.without(bodyMask)
	prev := cctx.c.open
	cctx.c.open = OpenTemplate
	actx := cctx.with(inTplArg)

	target, i, _ := tk.inline(pos+2, limit, actx, false)
	var args []token.Argument
	for i < limit && src[i] == '|' {
		arg, npos := tk.templateArg(i, limit, actx)
		args = append(args, arg)
		i = npos
	}
	if !lookingAt(src, i, "}}") {
		return nil, 0, false
	}
	cctx.c.open = prev
	tpl := &token.Template{
		Sp:     token.NewSpan(pos, i+2),
		Target: target,
		Args:   args,
	}
	return []token.Token{tpl}, i + 2, true
}

// templateArg parses one `|…` argument, splitting a `name=value` form at the
// first top-level equals sign.
func (tk *Tokenizer) templateArg(pos, limit int, actx Context) (token.Argument, int) {
	src := tk.src
	arg := token.Argument{Eq: -1, Term: -1}
	name, i, cause := tk.inline(pos+1, limit, actx.with(breakEqual), false)
	arg.Tokens = name
	if cause == stopOracle && i < limit && src[i] == '=' {
		value, j, _ := tk.inline(i+1, limit, actx, false)
		arg.Eq = len(arg.Tokens)
		arg.Tokens = append(arg.Tokens, value...)
		i = j
	}
	arg.Sp = token.NewSpan(pos, i)
	return arg, i
}

// parameter parses `{{{name|default}}}`. Strict like template.
func (tk *Tokenizer) parameter(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	if tk.depth >= tk.opts.MaxDepth {
		return nil, 0, false
	}
	tk.depth++
	defer func() { tk.depth-- }()

	cctx := ctx.without(bodyMask)
	prev := cctx.c.open
	cctx.c.open = OpenParameter
	actx := cctx.with(inTplArg)

	name, i, _ := tk.inline(pos+3, limit, actx, false)
	var defaults []token.Argument
	for i < limit && src[i] == '|' {
		arg, npos := tk.templateArg(i, limit, actx)
		defaults = append(defaults, arg)
		i = npos
	}
	if !lookingAt(src, i, "}}}") {
		return nil, 0, false
	}
	cctx.c.open = prev
	par := &token.Parameter{
		Sp:       token.NewSpan(pos, i+3),
		Name:     name,
		Defaults: defaults,
	}
	return []token.Token{par}, i + 3, true
}

// langVariant dispatches a `-{…}-` language-conversion block. A brace run
// after the opener belongs to a template or parameter, which takes
// precedence. On body failure the opener degrades like the other bracket
// constructs.
func (tk *Tokenizer) langVariant(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	if !tk.cfg.LangConversion || !lookingAt(src, pos, "-{") {
		return nil, 0, false
	}
	if byteAt(src, pos+2) == '{' {
		return nil, 0, false
	}
	bctx := ctx.branch()
	toks, npos, ok := tk.memoized(ruleLangVariant, pos, bctx, func() ([]token.Token, int, bool) {
		return tk.langVariantBody(pos, limit, bctx)
	})
	if ok {
		ctx.commit(bctx)
		return toks, npos, true
	}
	ctx.c.open = OpenNone
	ctx.c.misnested++
	return []token.Token{&token.Text{Sp: token.NewSpan(pos, pos+2)}}, pos + 2, true
}

// langVariantBody parses the strict `-{flags|variants}-` form. Without a
// recognized variant list the whole block is a raw conversion-protected span.
func (tk *Tokenizer) langVariantBody(pos, limit int, ctx Context) ([]token.Token, int, bool) {
	src := tk.src
	if tk.depth >= tk.opts.MaxDepth {
		return nil, 0, false
	}
	tk.depth++
	defer func() { tk.depth-- }()

	cctx := ctx.without(bodyMask).with(inVariant)
	prev := cctx.c.open
	cctx.c.open = OpenLangVariant

	i := pos + 2
	flags := tk.variantFlags(&i, limit)
	var variants []token.Variant
	raw := true
	for {
		v, npos, ok := tk.variantItem(i, limit, cctx)
		if !ok {
			return nil, 0, false
		}
		if v.Lang != "" {
			raw = false
		}
		variants = append(variants, v)
		i = npos
		if i < limit && src[i] == ';' {
			i++
			continue
		}
		break
	}
	if !lookingAt(src, i, "}-") {
		return nil, 0, false
	}
	if len(flags) > 0 {
		raw = false
	}
	cctx.c.open = prev
	lv := &token.LangVariant{
		Sp:       token.NewSpan(pos, i+2),
		Flags:    flags,
		Variants: variants,
		Raw:      raw,
	}
	return []token.Token{lv}, i + 2, true
}

// variantFlags consumes an optional short flags segment terminated by '|',
// advancing *i past it. A segment containing anything but flag characters is
// not a flags segment at all.
func (tk *Tokenizer) variantFlags(i *int, limit int) []string {
	src := tk.src
	j := *i
	for j < limit && j-*i < 64 {
		c := src[j]
		if c == '|' {
			var flags []string
			for _, f := range strings.Split(string(src[*i:j]), ";") {
				if f = strings.TrimSpace(f); f != "" {
					flags = append(flags, f)
				}
			}
			*i = j + 1
			return flags
		}
		if isFlagByte(c) || c == ';' || c == ' ' {
			j++
			continue
		}
		break
	}
	return nil
}

// variantItem parses one semicolon-separated variant: `code:text`,
// `from=>code:text`, or bare raw text.
func (tk *Tokenizer) variantItem(pos, limit int, cctx Context) (token.Variant, int, bool) {
	src := tk.src
	ictx := cctx.with(breakSemicolon)
	if code, cend, ok := tk.variantCode(pos, limit); ok {
		content, i, _ := tk.inline(cend, limit, ictx, false)
		return token.Variant{Lang: code, TwoWay: true, Content: content}, i, true
	}
	// one-way form: stop a trial run at a `=>` arrow
	_, p, cause := tk.inline(pos, limit, ictx.with(inArrow), false)
	if cause == stopOracle && lookingAt(src, p, "=>") {
		from := string(src[pos:p])
		code, cend, ok := tk.variantCode(p+2, limit)
		if !ok {
			return token.Variant{}, 0, false
		}
		content, i, _ := tk.inline(cend, limit, ictx, false)
		return token.Variant{Lang: code, From: from, Content: content}, i, true
	}
	content, i, _ := tk.inline(pos, limit, ictx, false)
	return token.Variant{Content: content}, i, true
}

// variantCode matches a `code:` prefix whose code is a well-formed language
// tag.
func (tk *Tokenizer) variantCode(pos, limit int) (string, int, bool) {
	src := tk.src
	j := pos
	for j < limit && j-pos < 16 && isFlagByte(src[j]) {
		j++
	}
	if j == pos || j >= limit || src[j] != ':' {
		return "", 0, false
	}
	code := string(src[pos:j])
	if _, err := language.Parse(code); err != nil {
		return "", 0, false
	}
	return strings.ToLower(code), j + 1, true
}

func isFlagByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '-'
}
