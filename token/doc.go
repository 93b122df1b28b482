/*
Package token defines the flat, span-annotated token model produced by the
wikitext tokenizer.

Tokens form a closed tagged union: one variant per syntactic unit of the
markup, each carrying a half-open byte range (Span) into the original input
buffer. Nothing in this package interprets the markup; it only names its
shapes. The tokenizer package produces tokens, and the two post-passes
(reducer, quote balancer) replace them wholesale—tokens are never mutated
across parses.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package token

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wikitext.token'.
func tracer() tracing.Trace {
	return tracing.Select("wikitext.token")
}
