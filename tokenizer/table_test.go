package tokenizer

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/wikitext/token"
)

func TestTableFostering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "{|\nbogus\n|}"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Equal(t, 1, k[token.KTableStart])
	assert.Equal(t, 1, k[token.KTableEnd])
	assert.Zero(t, k[token.KText], "fostered preamble content renders as absent")
	assert.Empty(t, token.Gaps(len(in), seq),
		"fostered spans merge into the table token")
}

func TestTableCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "{|\n|-\n| a || b\n|}"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Equal(t, 1, k[token.KTableStart])
	assert.Equal(t, 1, k[token.KTableRow])
	assert.Equal(t, 2, k[token.KTableData])
	assert.Equal(t, 1, k[token.KTableEnd])
}

func TestTableHeadingCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "{|\n! x !! y\n|}"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Equal(t, 2, k[token.KTableHeading])
	assert.Zero(t, k[token.KTableData])
}

func TestTableCaption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "{|\n|+ the caption\n|}"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Equal(t, 1, k[token.KTableCaption])
}

func TestTableCellAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "{|\n| colspan=2 | wide\n|}"
	seq := tokenize(in)
	var cell *token.TableData
	for _, tok := range seq {
		if td, ok := tok.(*token.TableData); ok {
			cell = td
		}
	}
	if assert.NotNil(t, cell) {
		assert.Len(t, cell.Attrs, 1)
		assert.Equal(t, "colspan", textOf(in, cell.Attrs[0].Name()))
	}
}

func TestTableAttrSplitVetoedByLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	// the pipe belongs to the wikilink, not to an attribute list
	in := "{|\n| [[a|b]]\n|}"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Equal(t, 1, k[token.KTableData])
	assert.Equal(t, 1, k[token.KLink])
	var cell *token.TableData
	for _, tok := range seq {
		if td, ok := tok.(*token.TableData); ok {
			cell = td
		}
	}
	if assert.NotNil(t, cell) {
		assert.Empty(t, cell.Attrs)
	}
}

func TestNestedTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "{|\n|\n{|\n| inner\n|}\n|}"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Equal(t, 2, k[token.KTableStart])
	assert.Equal(t, 2, k[token.KTableEnd])
}

func TestUnclosedTableRunsToEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := "{|\n| cell without end"
	seq := tokenize(in)
	k := kinds(seq)
	assert.Equal(t, 1, k[token.KTableStart])
	assert.Zero(t, k[token.KTableEnd])
	assert.Empty(t, token.Gaps(len(in), seq))
}

func TestListItemAbsorbsTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := ":{|\n| a\n|}\nafter"
	seq := tokenize(in)
	var li *token.ListItem
	for _, tok := range seq {
		if item, ok := tok.(*token.ListItem); ok {
			li = item
		}
	}
	if assert.NotNil(t, li, "the definition-prefixed table has no other reading") {
		inner := kinds(li.Content)
		assert.Equal(t, 1, inner[token.KTableStart])
		assert.Equal(t, 1, inner[token.KTableEnd],
			"the table body is absorbed into the list item")
	}
	top := make(map[token.Kind]int)
	for _, tok := range seq {
		top[tok.Kind()]++
	}
	assert.Zero(t, top[token.KTableEnd], "no table token may escape the item")
}
