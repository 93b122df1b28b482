package tokenizer

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/wikitext/token"
)

func tokenize(input string) []token.Token {
	return Tokenize([]byte(input), nil, Options{})
}

// collectKinds walks the token tree, including nested content regions.
func collectKinds(seq []token.Token, into map[token.Kind]int) {
	for _, t := range seq {
		into[t.Kind()]++
		switch n := t.(type) {
		case *token.Heading:
			collectKinds(n.Content, into)
		case *token.ListItem:
			collectKinds(n.Content, into)
		case *token.Link:
			collectKinds(n.Target, into)
			for _, a := range n.Content {
				collectKinds(a.Tokens, into)
			}
		case *token.ExternalLink:
			collectKinds(n.Content, into)
		case *token.Template:
			collectKinds(n.Target, into)
			for _, a := range n.Args {
				collectKinds(a.Tokens, into)
			}
		case *token.Parameter:
			collectKinds(n.Name, into)
			for _, a := range n.Defaults {
				collectKinds(a.Tokens, into)
			}
		case *token.LangVariant:
			for _, v := range n.Variants {
				collectKinds(v.Content, into)
			}
		}
	}
}

func kinds(seq []token.Token) map[token.Kind]int {
	m := make(map[token.Kind]int)
	collectKinds(seq, m)
	return m
}

func textOf(src string, seq []token.Token) string {
	out := ""
	for _, t := range seq {
		if t.Kind() == token.KText {
			out += string(t.Span().Slice([]byte(src)))
		}
	}
	return out
}

func TestTotality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	inputs := []string{
		"",
		"plain text",
		"[[ {{ ]] }} {{{ ]]]",
		"{|\n{|\n{|\nno end in sight",
		"'''''''''''''",
		"<nowiki>never closed",
		"-{ -{ -{ }-",
		"= = = ==== =\n|}|}|}",
		";;;;::::**##",
		"{{a|{{b|{{c|{{d}}}}}}}}",
		"[http://x [http://y",
		"__ __TOC__ __BOGUS__",
		"&amp; &bogus; &#65;",
	}
	for _, in := range inputs {
		seq := tokenize(in)
		assert.NotNil(t, seq, "input %q must yield a token sequence", in)
		last := 0
		for _, tok := range seq {
			sp := tok.Span()
			assert.GreaterOrEqual(t, sp.Start, last, "spans must be non-decreasing in %q", in)
			assert.LessOrEqual(t, sp.End, len(in), "spans must lie within input bounds in %q", in)
			last = sp.Start
		}
	}
}

func TestCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	inputs := []string{
		"plain text with [[links]] and {{templates|x}}",
		"== a heading ==\nbody text\n* a list\n* more list",
		"before <ref name=a>note</ref> after",
		"ends with newline\n",
		"[[ {{ ]] broken markup",
	}
	for _, in := range inputs {
		seq := tokenize(in)
		gaps := token.Gaps(len(in), seq)
		assert.Empty(t, gaps, "token spans must cover input %q", in)
	}
}

func TestDelimiterDegradation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	seq := tokenize("[[ {{ ]]")
	k := kinds(seq)
	assert.Zero(t, k[token.KLink], "no link token may survive")
	assert.Zero(t, k[token.KTemplate], "no template token may survive")
	assert.Equal(t, "[[ {{ ]]", textOf("[[ {{ ]]", seq))
}

func TestDeepLinkNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	// a long run of unmatched openers forces a failed link parse at every
	// position; memoization keeps the unwinding linear
	in := strings.Repeat("[[", 60)
	seq := tokenize(in)
	k := kinds(seq)
	assert.Zero(t, k[token.KLink])
	assert.Equal(t, in, textOf(in, seq))
	assert.Empty(t, token.Gaps(len(in), seq))
	//
	in = strings.Repeat("[[", 60) + strings.Repeat("]]", 30)
	seq = tokenize(in)
	assert.Empty(t, token.Gaps(len(in), seq))
}

func TestHeadingLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	seq := tokenize("=Hi=")
	if assert.NotEmpty(t, seq) {
		h, ok := seq[0].(*token.Heading)
		if assert.True(t, ok, "expected a heading, got %v", seq[0].Kind()) {
			assert.Equal(t, 1, h.Level)
			assert.Equal(t, "Hi", textOf("=Hi=", h.Content))
		}
	}
	//
	in := "==Hi==="
	seq = tokenize(in)
	if assert.NotEmpty(t, seq) {
		h, ok := seq[0].(*token.Heading)
		if assert.True(t, ok) {
			assert.Equal(t, 2, h.Level)
			assert.Equal(t, "Hi=", textOf(in, h.Content),
				"the surplus equals sign folds into the content")
		}
	}
}

func TestHeadingAllEquals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	seq := tokenize("====")
	if assert.NotEmpty(t, seq) {
		h, ok := seq[0].(*token.Heading)
		if assert.True(t, ok) {
			assert.Equal(t, 1, h.Level)
			assert.Equal(t, "==", textOf("====", h.Content))
		}
	}
}

func TestExtensionVerbatimCapture(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "<nowiki>{{x}}</nowiki>"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Zero(t, k[token.KTemplate], "nowiki content is never parsed")
	assert.Equal(t, 1, k[token.KExtension])
	ext, ok := seq[0].(*token.Extension)
	if assert.True(t, ok) {
		assert.Equal(t, "nowiki", ext.Name)
		assert.True(t, ext.HasContent)
		assert.Equal(t, "{{x}}", string(ext.Content.Slice([]byte(in))))
	}
}

func TestUnterminatedExtensionTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "<nowiki>rest of the text"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Zero(t, k[token.KExtension])
	assert.Equal(t, in, textOf(in, seq))
}

func TestTemplateArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "{{foo|bar|name=val}}"
	seq := tokenize(in)
	if assert.Len(t, seq, 1) {
		tpl, ok := seq[0].(*token.Template)
		if assert.True(t, ok) {
			assert.Equal(t, "foo", textOf(in, tpl.Target))
			if assert.Len(t, tpl.Args, 2) {
				assert.Equal(t, -1, tpl.Args[0].Eq)
				assert.Equal(t, "bar", textOf(in, tpl.Args[0].Tokens))
				assert.Equal(t, "name", textOf(in, tpl.Args[1].Name()))
				assert.Equal(t, "val", textOf(in, tpl.Args[1].Value()))
			}
		}
	}
}

func TestParameterBeforeTemplate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	seq := tokenize("{{{1|fallback}}}")
	if assert.Len(t, seq, 1) {
		par, ok := seq[0].(*token.Parameter)
		if assert.True(t, ok, "the longest opener wins: parameter before template") {
			assert.Equal(t, "1", textOf("{{{1|fallback}}}", par.Name))
			assert.Len(t, par.Defaults, 1)
		}
	}
}

func TestParameterFallbackShedsBrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "{{{x}}"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Zero(t, k[token.KParameter])
	assert.Equal(t, 1, k[token.KTemplate])
	if assert.Len(t, seq, 2) {
		assert.Equal(t, token.KText, seq[0].Kind())
		assert.Equal(t, token.NewSpan(0, 1), seq[0].Span(),
			"the surplus lead brace stays literal")
		tpl, ok := seq[1].(*token.Template)
		if assert.True(t, ok) {
			assert.Equal(t, "x", textOf(in, tpl.Target))
			assert.Equal(t, token.NewSpan(1, 6), tpl.Sp)
		}
	}
}

func TestNestedTemplates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	seq := tokenize("{{outer|{{inner}}}}")
	k := kinds(seq)
	assert.Equal(t, 2, k[token.KTemplate])
}

func TestWikilinkWithTrail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "[[Foo|bar]]s and more"
	seq := tokenize(in)
	if assert.NotEmpty(t, seq) {
		lnk, ok := seq[0].(*token.Link)
		if assert.True(t, ok) {
			assert.Equal(t, "Foo", textOf(in, lnk.Target))
			assert.Len(t, lnk.Content, 1)
			assert.Equal(t, "s", string(lnk.Trail.Slice([]byte(in))))
			assert.Equal(t, 12, lnk.Sp.End, "trail is part of the link span")
		}
	}
}

func TestExternalLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "see [https://example.org the label] here"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Equal(t, 1, k[token.KExternalLink])
	for _, tok := range seq {
		if ext, ok := tok.(*token.ExternalLink); ok {
			assert.Equal(t, "https://example.org", string(ext.Target.Slice([]byte(in))))
			assert.Equal(t, "the label", textOf(in, ext.Content))
		}
	}
}

func TestAutolink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "visit https://example.org/x. today"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Equal(t, 1, k[token.KAutolink])
	for _, tok := range seq {
		if al, ok := tok.(*token.Autolink); ok {
			assert.Equal(t, "https://example.org/x",
				string(al.Target.Slice([]byte(in))),
				"trailing punctuation reads as prose")
		}
	}
}

func TestMagicLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	for _, in := range []string{"RFC 7231", "PMID 12345", "ISBN 978-3-16-148410-0"} {
		seq := tokenize(in)
		k := kinds(seq)
		assert.Equal(t, 1, k[token.KAutolink], "expected a magic link in %q", in)
	}
	seq := tokenize("RFCs are great")
	assert.Zero(t, kinds(seq)[token.KAutolink])
}

func TestBehaviorSwitch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	seq := tokenize("__NOTOC__ but __BOGUS__")
	k := kinds(seq)
	assert.Equal(t, 1, k[token.KBehaviorSwitch])
}

func TestInclusionControl(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "a<noinclude>b</noinclude>c"
	viewed := Tokenize([]byte(in), nil, Options{})
	assert.Equal(t, "abc", textOf(in, viewed))
	transcluded := Tokenize([]byte(in), nil, Options{Transcluded: true})
	assert.Equal(t, "ac", textOf(in, transcluded))
	//
	in = "a<includeonly>b</includeonly>c"
	viewed = Tokenize([]byte(in), nil, Options{})
	assert.Equal(t, "ac", textOf(in, viewed))
	transcluded = Tokenize([]byte(in), nil, Options{Transcluded: true})
	assert.Equal(t, "abc", textOf(in, transcluded))
}

func TestOnlyincludeRegions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "x<onlyinclude>y</onlyinclude>z"
	transcluded := Tokenize([]byte(in), nil, Options{Transcluded: true})
	assert.Equal(t, "y", textOf(in, transcluded))
}

func TestExpandedMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "{{x}} stays literal"
	seq := Tokenize([]byte(in), nil, Options{Expanded: true})
	k := kinds(seq)
	assert.Zero(t, k[token.KTemplate])
	assert.Equal(t, in, textOf(in, seq))
}

func TestSinkDelivery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	var streamed []token.Token
	opts := Options{Sink: func(toks []token.Token) {
		streamed = append(streamed, toks...)
	}}
	in := "line one\nline two\nline three\n"
	full := Tokenize([]byte(in), nil, opts)
	assert.NotEmpty(t, streamed, "the sink must receive flushed blocks")
	assert.NotEmpty(t, full)
}

func TestListItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "* one\n* two\n"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Equal(t, 2, k[token.KListItem])
}

func TestDefinitionListSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := ";term:description"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Equal(t, 2, k[token.KListItem],
		"the colon opens a second item on the line")
}

func TestHorizontalRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	seq := tokenize("----\n")
	if assert.NotEmpty(t, seq) {
		hr, ok := seq[0].(*token.HorizontalRule)
		if assert.True(t, ok) {
			assert.False(t, hr.Trailing)
		}
	}
	seq = tokenize("---- with text\n")
	if assert.NotEmpty(t, seq) {
		hr, ok := seq[0].(*token.HorizontalRule)
		if assert.True(t, ok) {
			assert.True(t, hr.Trailing)
		}
	}
}

func TestLangVariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "-{zh-cn:简;zh-tw:繁}-"
	seq := tokenize(in)
	if assert.NotEmpty(t, seq) {
		lv, ok := seq[0].(*token.LangVariant)
		if assert.True(t, ok, "expected a lang variant, got %v", seq[0].Kind()) {
			assert.False(t, lv.Raw)
			if assert.Len(t, lv.Variants, 2) {
				assert.Equal(t, "zh-cn", lv.Variants[0].Lang)
				assert.Equal(t, "zh-tw", lv.Variants[1].Lang)
			}
		}
	}
}

func TestLangVariantRaw(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	seq := tokenize("-{verbatim}-")
	if assert.NotEmpty(t, seq) {
		lv, ok := seq[0].(*token.LangVariant)
		if assert.True(t, ok) {
			assert.True(t, lv.Raw)
		}
	}
}

func TestEntity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "&amp; &bogus; &#65;"
	seq := tokenize(in)
	var decoded []string
	for _, tok := range seq {
		if e, ok := tok.(*token.Entity); ok {
			decoded = append(decoded, e.Decoded)
		}
	}
	assert.Equal(t, []string{"&", "A"}, decoded)
}

func TestComment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	seq := tokenize("a<!-- hidden -->b")
	k := kinds(seq)
	assert.Equal(t, 1, k[token.KComment])
}
