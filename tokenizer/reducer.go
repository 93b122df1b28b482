package tokenizer

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/npillmayer/wikitext/token"
)

// reducer compacts the raw token stream in a single left-to-right pass with
// one token of lookback. It merges text runs, folds adjacent bullet lines
// into one logical list, lets a list item absorb a table it opened, and
// fosters malformed table preamble content into the nearest table token.
// Reducing already-reduced output is a no-op.
type reducer struct {
	src         []byte
	out         []token.Token
	taken       int              // prefix already handed to the sink
	tables      *arraystack.Stack // TableStart tokens still open
	pendingNL   *token.NewLine
	absorb      *token.ListItem // list item currently swallowing its table
	absorbDepth int
}

func newReducer(src []byte) *reducer {
	return &reducer{src: src, tables: arraystack.New()}
}

func (r *reducer) push(toks []token.Token) {
	for _, t := range toks {
		r.add(t)
	}
}

func (r *reducer) add(t token.Token) {
	if txt, isText := t.(*token.Text); isText && txt.Sp.Len() == 0 {
		return
	}
	if r.absorb != nil {
		r.absorb.Content = append(r.absorb.Content, t)
		r.absorb.Sp = r.absorb.Sp.Cover(t.Span())
		switch t.Kind() {
		case token.KTableStart:
			r.absorbDepth++
		case token.KTableEnd:
			r.absorbDepth--
			if r.absorbDepth <= 0 {
				r.absorb = nil
			}
		}
		return
	}
	if r.pendingNL != nil {
		nl := r.pendingNL
		r.pendingNL = nil
		if li, isLI := t.(*token.ListItem); isLI && !startsTable(li) {
			// adjacent bullet lines form one list: the line break vanishes
			// into the previous item's span
			if pli, ok := r.last().(*token.ListItem); ok {
				pli.Sp = pli.Sp.Cover(nl.Sp)
			}
		} else {
			r.place(nl)
		}
	}
	if nl, isNL := t.(*token.NewLine); isNL {
		if _, isLI := r.last().(*token.ListItem); isLI {
			r.pendingNL = nl
			return
		}
	}
	if li, isLI := t.(*token.ListItem); isLI && startsTable(li) {
		r.place(li)
		if depth := tableBalance(li.Content); depth > 0 {
			r.absorb = li
			r.absorbDepth = depth
		}
		return
	}
	r.place(t)
}

// place emits one token, applying fostering and text merging against the
// last emitted token.
func (r *reducer) place(t token.Token) {
	if last := r.last(); !r.tables.Empty() && isFosterTarget(last) {
		switch t.Kind() {
		case token.KTableRow:
			if row, ok := last.(*token.TableRow); ok && len(row.Attrs) == 0 {
				// an empty row is replaced by its successor
				next := t.(*token.TableRow)
				row.Sp = row.Sp.Cover(next.Sp)
				row.Attrs = next.Attrs
				return
			}
		case token.KTableStart, token.KTableCaption, token.KTableHeading,
			token.KTableData, token.KTableEnd:
			// structural table tokens pass
		case token.KTemplate, token.KParameter:
			// opaque: may still expand into a valid row
		default:
			// malformed table preamble renders as if absent
			fosterInto(last, t.Span())
			return
		}
	}
	switch t.Kind() {
	case token.KTableStart:
		r.tables.Push(t)
	case token.KTableEnd:
		r.tables.Pop()
	}
	if txt, isText := t.(*token.Text); isText {
		if ltxt, ok := r.last().(*token.Text); ok && ltxt.Sp.End == txt.Sp.Start {
			ltxt.Sp = ltxt.Sp.Cover(txt.Sp)
			return
		}
	}
	r.out = append(r.out, t)
}

// take returns the tokens finalized since the last call. The most recent
// token is always held back, it may still merge or grow.
func (r *reducer) take() []token.Token {
	n := len(r.out) - 1
	if n <= r.taken {
		return nil
	}
	chunk := r.out[r.taken:n]
	r.taken = n
	return chunk
}

// finish flushes held-back state and returns the complete reduced sequence.
func (r *reducer) finish() []token.Token {
	if r.pendingNL != nil {
		r.place(r.pendingNL)
		r.pendingNL = nil
	}
	r.absorb = nil
	return r.out
}

func (r *reducer) last() token.Token {
	if len(r.out) == 0 {
		return nil
	}
	return r.out[len(r.out)-1]
}

// isFosterTarget reports whether a token attracts malformed content that
// follows it inside a table.
func isFosterTarget(t token.Token) bool {
	if t == nil {
		return false
	}
	k := t.Kind()
	return k == token.KTableStart || k == token.KTableRow
}

// fosterInto merges a discarded span into the foster target's span.
func fosterInto(t token.Token, sp token.Span) {
	switch target := t.(type) {
	case *token.TableStart:
		target.Sp = target.Sp.Cover(sp)
	case *token.TableRow:
		target.Sp = target.Sp.Cover(sp)
	}
}

// startsTable reports whether a list item's content opens with a table.
func startsTable(li *token.ListItem) bool {
	return len(li.Content) > 0 && li.Content[0].Kind() == token.KTableStart
}

// tableBalance counts tables opened but not closed within toks.
func tableBalance(toks []token.Token) int {
	depth := 0
	for _, t := range toks {
		switch t.Kind() {
		case token.KTableStart:
			depth++
		case token.KTableEnd:
			if depth > 0 {
				depth--
			}
		}
	}
	return depth
}
