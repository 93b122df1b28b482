package tokenizer

import (
	"bytes"

	"github.com/npillmayer/wikitext/site"
	"github.com/npillmayer/wikitext/token"
)

// defaultMaxDepth bounds the nesting of bracket-like constructs. A construct
// refused at the bound degrades to literal text like any other mismatch.
const defaultMaxDepth = 100

// Options select the parse mode of a tokenizer run.
type Options struct {
	// Transcluded selects the "as transcluded" inclusion mode: noinclude
	// content is dropped, includeonly content survives, and onlyinclude
	// regions, when present, restrict the parse to their bodies.
	Transcluded bool

	// Expanded marks input that already passed template/module expansion:
	// recognition of new template and parameter openers is disabled and
	// strip markers are recognized.
	Expanded bool

	// MaxDepth overrides the construct nesting bound; 0 means default.
	MaxDepth int

	// Sink, when set, receives reduced tokens block by block as the engine
	// flushes them. The final Run result is always complete regardless.
	Sink func([]token.Token)
}

// Tokenizer drives one parse of one buffer. It is single-use: all mutable
// state (context cells, memoization cache) is scoped to this invocation and
// must not be shared across goroutines. The site configuration is immutable
// and may be shared freely.
type Tokenizer struct {
	src        []byte
	cfg        *site.Config
	opts       Options
	memo       map[memoKey]memoEntry
	depth      int
	tableDepth int
}

// New prepares a tokenizer over src. cfg may be nil, in which case the
// default site configuration applies.
func New(src []byte, cfg *site.Config, opts Options) *Tokenizer {
	if cfg == nil {
		cfg = site.DefaultConfig()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = defaultMaxDepth
	}
	return &Tokenizer{
		src:  src,
		cfg:  cfg,
		opts: opts,
		memo: make(map[memoKey]memoEntry),
	}
}

// Tokenize runs the full pipeline—grammar engine, reducer, quote balancer—
// over src and returns the document's token sequence.
func Tokenize(src []byte, cfg *site.Config, opts Options) []token.Token {
	tk := New(src, cfg, opts)
	toks := tk.Run()
	return Balance(src, toks)
}

// Run tokenizes the buffer block by block and reduces the raw stream. The
// result is not yet quote-balanced; use Tokenize for the complete pipeline.
func (tk *Tokenizer) Run() []token.Token {
	ctx := newContext(tk.opts.Expanded)
	red := newReducer(tk.src)
	for _, region := range tk.includeRegions() {
		pos := region[0]
		limit := region[1]
		for pos < limit {
			toks, npos := tk.block(pos, limit, ctx)
			if npos <= pos {
				// forward-progress fallback; the rules should never get here
				toks = []token.Token{&token.Text{Sp: token.NewSpan(pos, pos+1)}}
				npos = pos + 1
			}
			red.push(toks)
			if tk.opts.Sink != nil {
				if done := red.take(); len(done) > 0 {
					tk.opts.Sink(done)
				}
			}
			pos = npos
		}
	}
	out := red.finish()
	if tk.opts.Sink != nil {
		if rest := out[red.taken:]; len(rest) > 0 {
			tk.opts.Sink(rest)
		}
	}
	if ctx.c.misnested > 0 {
		tracer().Debugf("%d constructs degraded to literal text", ctx.c.misnested)
	}
	return out
}

// block tokenizes one top-level block: a start-of-line construct (heading,
// list item, rule, table line) or an inline run up to and including the next
// newline.
func (tk *Tokenizer) block(pos, limit int, ctx Context) ([]token.Token, int) {
	src := tk.src
	if tk.atSOL(pos) {
		if tk.tableDepth > 0 {
			if toks, npos, ok := tk.tableLine(pos, limit, ctx); ok {
				return toks, npos
			}
		}
		if lookingAt(src, pos, "{|") {
			if toks, npos, ok := tk.tableStart(pos, limit, ctx); ok {
				return toks, npos
			}
		}
		switch src[pos] {
		case '=':
			if toks, npos, ok := tk.heading(pos, limit, ctx); ok {
				return toks, npos
			}
		case '-':
			if toks, npos, ok := tk.horizontalRule(pos, limit, ctx); ok {
				return toks, npos
			}
		case '*', '#', ':', ';':
			if toks, npos, ok := tk.listItem(pos, limit, ctx); ok {
				return toks, npos
			}
		}
	}
	bctx := ctx
	if tk.tableDepth > 0 {
		bctx = bctx.with(inTable)
	}
	toks, npos, cause := tk.inline(pos, limit, bctx, true)
	switch cause {
	case stopNewline:
		toks, npos = tk.consumeNewline(toks, npos, limit)
	case stopOracle:
		// an oracle break with no construct to terminate at block level:
		// a newline inside a table stops here, everything else becomes text
		if npos < limit && (src[npos] == '\n' || src[npos] == '\r') {
			toks, npos = tk.consumeNewline(toks, npos, limit)
		} else if npos < limit {
			toks = append(toks, &token.Text{Sp: token.NewSpan(npos, npos+1)})
			npos++
		}
	}
	return toks, npos
}

// consumeNewline appends a NewLine token for the line break at pos,
// swallowing a CR/LF pair as one break.
func (tk *Tokenizer) consumeNewline(toks []token.Token, pos, limit int) ([]token.Token, int) {
	end := pos
	if end < limit && tk.src[end] == '\r' {
		end++
	}
	if end < limit && tk.src[end] == '\n' {
		end++
	}
	if end > pos {
		toks = append(toks, &token.NewLine{Sp: token.NewSpan(pos, end)})
	}
	return toks, end
}

// atSOL reports whether pos sits at the start of a line.
func (tk *Tokenizer) atSOL(pos int) bool {
	return pos == 0 || tk.src[pos-1] == '\n' ||
		tk.src[pos-1] == '\r' && byteAt(tk.src, pos) != '\n'
}

// includeRegions returns the byte ranges to tokenize after inclusion-control
// processing. In transcluded mode with an <onlyinclude> present, only the
// onlyinclude bodies survive; otherwise the whole buffer is one region.
func (tk *Tokenizer) includeRegions() [][2]int {
	whole := [][2]int{{0, len(tk.src)}}
	if !tk.opts.Transcluded {
		return whole
	}
	const openTag = "<onlyinclude>"
	const closeTag = "</onlyinclude>"
	var regions [][2]int
	pos := 0
	for {
		i := indexFold(tk.src, pos, openTag)
		if i < 0 {
			break
		}
		from := i + len(openTag)
		j := indexFold(tk.src, from, closeTag)
		if j < 0 {
			regions = append(regions, [2]int{from, len(tk.src)})
			break
		}
		regions = append(regions, [2]int{from, j})
		pos = j + len(closeTag)
	}
	if len(regions) == 0 {
		return whole
	}
	tracer().Debugf("onlyinclude: restricting parse to %d region(s)", len(regions))
	return regions
}

// ---------------------------------------------------------------------------
// small byte-level helpers shared by the rule files

func byteAt(src []byte, pos int) byte {
	if pos < 0 || pos >= len(src) {
		return 0
	}
	return src[pos]
}

func lookingAt(src []byte, pos int, lit string) bool {
	if pos < 0 || pos+len(lit) > len(src) {
		return false
	}
	return string(src[pos:pos+len(lit)]) == lit
}

// runLen counts consecutive occurrences of c at pos, capped by limit.
func runLen(src []byte, pos, limit int, c byte) int {
	n := 0
	for pos+n < limit && src[pos+n] == c {
		n++
	}
	return n
}

// lineEnd returns the position of the next CR/LF at or after pos, or limit.
func lineEnd(src []byte, pos, limit int) int {
	for i := pos; i < limit; i++ {
		if src[i] == '\n' || src[i] == '\r' {
			return i
		}
	}
	return limit
}

// indexFold finds the ASCII case-insensitive first occurrence of lit at or
// after pos.
func indexFold(src []byte, pos int, lit string) int {
	if pos > len(src) {
		return -1
	}
	lower := bytes.ToLower(src[pos:])
	i := bytes.Index(lower, []byte(lit))
	if i < 0 {
		return -1
	}
	return pos + i
}
