/*
Package tokenizer implements the context-sensitive wikitext grammar engine.

The engine is a memoizing, backtracking recursive-descent tokenizer with
ordered choice: the first matching alternative wins, and every top-level
alternative set ends in a fallback that consumes at least one character as
literal text, so tokenizing is total—every byte sequence yields some token
sequence, never an error.

Whether a given character terminates the currently open construct depends on
the enclosing constructs; that knowledge is carried in a value-semantics
Context and consulted through a single inline-break decision table. Two
post-passes complete the pipeline: a token-tree reducer that compacts the raw
stream and fosters malformed table content, and a quote balancer that
resolves ambiguous bold/italic apostrophe runs per line.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tokenizer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wikitext.tokenizer'.
func tracer() tracing.Trace {
	return tracing.Select("wikitext.tokenizer")
}
