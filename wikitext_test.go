package wikitext

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/wikitext/token"
)

func TestTokenizeModes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := []byte("<includeonly>{{x}}</includeonly>text")
	viewed := Tokenize(in, nil)
	transcluded := TokenizeTranscluded(in, nil)
	expanded := TokenizeExpanded(in, nil)
	//
	count := func(seq []token.Token, k token.Kind) int {
		n := 0
		for _, tok := range seq {
			if tok.Kind() == k {
				n++
			}
		}
		return n
	}
	assert.Zero(t, count(viewed, token.KTemplate), "includeonly body is dropped as viewed")
	assert.Equal(t, 1, count(transcluded, token.KTemplate))
	assert.Zero(t, count(expanded, token.KTemplate), "expansion already happened")
}

func TestTokenizeIsIndependentPerCall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.tokenizer")
	defer teardown()
	//
	in := []byte("{| \n| a\n|}")
	first := Tokenize(in, nil)
	second := Tokenize(in, nil)
	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Kind(), second[i].Kind())
		assert.Equal(t, first[i].Span(), second[i].Span())
	}
}
