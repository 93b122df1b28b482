package tokenizer

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/wikitext/token"
)

// rereduce feeds a token sequence through a fresh reducer.
func rereduce(src []byte, seq []token.Token) []token.Token {
	red := newReducer(src)
	red.push(seq)
	return red.finish()
}

func describe(seq []token.Token) []string {
	var out []string
	for _, t := range seq {
		out = append(out, t.Kind().String()+t.Span().String())
	}
	return out
}

func TestReducerFixedPoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	inputs := []string{
		"plain text\nsecond line",
		"* one\n* two\n* three",
		"{|\nbogus\n|-\n| a\n|}",
		":{|\n| a\n|}\ntail",
		"== head ==\ntext",
	}
	for _, in := range inputs {
		src := []byte(in)
		tk := New(src, nil, Options{})
		once := tk.Run()
		before := describe(once)
		again := rereduce(src, once)
		assert.Equal(t, before, describe(again),
			"reducing reduced output must be a no-op for %q", in)
	}
}

func TestReducerMergesText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	src := []byte("abcdef")
	red := newReducer(src)
	red.push([]token.Token{
		&token.Text{Sp: token.NewSpan(0, 2)},
		&token.Text{Sp: token.NewSpan(2, 2)}, // zero-width, dropped
		&token.Text{Sp: token.NewSpan(2, 6)},
	})
	out := red.finish()
	if assert.Len(t, out, 1) {
		assert.Equal(t, token.NewSpan(0, 6), out[0].Span())
	}
}

func TestReducerKeepsNonContiguousText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	src := []byte("abcdef")
	red := newReducer(src)
	red.push([]token.Token{
		&token.Text{Sp: token.NewSpan(0, 2)},
		&token.Text{Sp: token.NewSpan(4, 6)},
	})
	out := red.finish()
	assert.Len(t, out, 2)
}

func TestReducerMergesAdjacentListItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "* one\n* two"
	seq := tokenize(in)
	var items []*token.ListItem
	for _, tok := range seq {
		switch n := tok.(type) {
		case *token.ListItem:
			items = append(items, n)
		case *token.NewLine:
			t.Error("the line break between bullet lines must vanish")
		}
	}
	if assert.Len(t, items, 2) {
		assert.Equal(t, items[1].Sp.Start, items[0].Sp.End,
			"the first item's span swallows the break")
	}
}

func TestReducerKeepsOpaqueTokensInTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "{|\n{{row template}}\n|}"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Equal(t, 1, k[token.KTemplate],
		"a template between table lines may still expand into a row")
}

func TestReducerReplacesEmptyRow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "{|\n|-\n|-\n| a\n|}"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Equal(t, 1, k[token.KTableRow],
		"an empty row is replaced by its successor")
}
