package token

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSpanCover(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.token")
	defer teardown()
	//
	assert.Equal(t, NewSpan(1, 9), NewSpan(3, 9).Cover(NewSpan(1, 4)))
	assert.Equal(t, NewSpan(2, 5), Null.Cover(NewSpan(2, 5)))
	assert.Equal(t, NewSpan(2, 5), NewSpan(2, 5).Cover(Null))
	assert.True(t, Null.Cover(Null).IsNull())
}

func TestSpanSliceClamps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.token")
	defer teardown()
	//
	src := []byte("abc")
	assert.Equal(t, "bc", string(NewSpan(1, 7).Slice(src)))
	assert.Empty(t, NewSpan(5, 9).Slice(src))
	assert.Nil(t, Null.Slice(src))
}

func TestGaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.token")
	defer teardown()
	//
	seq := []Token{
		&Text{Sp: NewSpan(0, 3)},
		&NewLine{Sp: NewSpan(5, 6)},
	}
	gaps := Gaps(10, seq)
	assert.Equal(t, []Span{NewSpan(3, 5), NewSpan(6, 10)}, gaps)
	//
	full := []Token{&Text{Sp: NewSpan(0, 10)}}
	assert.Empty(t, Gaps(10, full))
}

func TestArgumentNameValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.token")
	defer teardown()
	//
	name := &Text{Sp: NewSpan(0, 4)}
	value := &Text{Sp: NewSpan(5, 8)}
	arg := Argument{Sp: NewSpan(0, 8), Tokens: []Token{name, value}, Eq: 1, Term: -1}
	assert.Equal(t, []Token{name}, arg.Name())
	assert.Equal(t, []Token{value}, arg.Value())
	//
	positional := NewArgument([]Token{name})
	assert.Nil(t, positional.Name())
	assert.Equal(t, []Token{name}, positional.Value())
	assert.Equal(t, NewSpan(0, 4), positional.Sp)
}
