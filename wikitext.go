/*
Package wikitext tokenizes Wikitext markup into a flat, span-annotated token
tree.

This is the top-level convenience API. It wraps the grammar engine in package
tokenizer with the three parse modes a wiki needs: a page as viewed, a page
as transcluded into another page, and text that already passed through
template expansion. All heavy lifting happens in the subpackages:

▪︎ token — the token model (closed tagged union, spans, arguments)

▪︎ site — static site configuration the tokenizer reads

▪︎ tokenizer — grammar engine, reducer and quote balancer

Parsing is total: there is no error return because there is no reject
outcome. Mismatched or ambiguous markup degrades to literal text.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package wikitext

import (
	"github.com/npillmayer/wikitext/site"
	"github.com/npillmayer/wikitext/token"
	"github.com/npillmayer/wikitext/tokenizer"
)

// Tokenize parses one wikitext buffer in "as viewed" mode. cfg may be nil to
// use the default site configuration.
func Tokenize(buf []byte, cfg *site.Config) []token.Token {
	return tokenizer.Tokenize(buf, cfg, tokenizer.Options{})
}

// TokenizeTranscluded parses buf as if transcluded into another page:
// noinclude branches are dropped, includeonly branches survive, and
// onlyinclude regions, when present, restrict the parse to their bodies.
func TokenizeTranscluded(buf []byte, cfg *site.Config) []token.Token {
	return tokenizer.Tokenize(buf, cfg, tokenizer.Options{Transcluded: true})
}

// TokenizeExpanded parses text that already went through template and module
// expansion: recognition of new template and parameter openers is disabled
// and strip markers left behind by the expansion are recognized.
func TokenizeExpanded(buf []byte, cfg *site.Config) []token.Token {
	return tokenizer.Tokenize(buf, cfg, tokenizer.Options{Expanded: true})
}
