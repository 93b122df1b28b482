/*
Package site holds the read-only site configuration consulted by the wikitext
tokenizer: the namespace table, extension and annotation tag name sets, the
external-link protocol list, the link-trail matcher, magic-link toggles and
the language-conversion toggle.

A Config is immutable once built and safe to share between concurrent parses.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package site

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wikitext.site'.
func tracer() tracing.Trace {
	return tracing.Select("wikitext.site")
}
