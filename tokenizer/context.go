package tokenizer

// flags is the value-semantics part of Context: one bit per enclosing
// construct (or break permission). Nested rules derive a modified copy via
// with/without rather than mutating a shared instance.
type flags uint32

const (
	inTable flags = 1 << iota
	inTableCaption
	inCellAttrs
	inTHCell
	inLinkTarget
	inLinkDesc
	inExtLink
	inTplArg
	inHeading
	inTag
	inArrow
	inListItem
	inVariant
	breakColon
	breakSemicolon
	breakEqual
	noTemplates // tokenizing already-expanded text: template openers disabled
)

// OpenKind tags the shared "open construct kind" cell.
type OpenKind uint8

const (
	OpenNone OpenKind = iota
	OpenTemplate
	OpenParameter
	OpenLink
	OpenLangVariant
)

func (k OpenKind) String() string {
	switch k {
	case OpenTemplate:
		return "template"
	case OpenParameter:
		return "parameter"
	case OpenLink:
		return "link"
	case OpenLangVariant:
		return "lang-variant"
	}
	return "none"
}

// cells are the few pieces of mutable state that must stay visible across the
// recursion. They are deep-cloned at every branch point so a failed
// alternative never leaks state into its sibling.
type cells struct {
	open      OpenKind // which bracket-like construct is currently open
	thNewline bool     // a table-heading cell's content crossed a newline
	misnested int      // constructs that degraded to literal text
}

// Context is the snapshot of which constructs enclose the parse position.
// It is threaded by value; the cells pointer is shared down one alternative
// and cloned across alternatives (branch).
type Context struct {
	f flags
	c *cells
}

func newContext(expanded bool) Context {
	ctx := Context{c: &cells{}}
	if expanded {
		ctx.f |= noTemplates
	}
	return ctx
}

func (ctx Context) has(f flags) bool {
	return ctx.f&f != 0
}

func (ctx Context) with(f flags) Context {
	ctx.f |= f
	return ctx
}

func (ctx Context) without(f flags) Context {
	ctx.f &^= f
	return ctx
}

// branch returns a context with freshly cloned cells. Alternatives must parse
// on a branch; committing back is the caller's choice.
func (ctx Context) branch() Context {
	cc := *ctx.c
	ctx.c = &cc
	return ctx
}

// commit copies the cells of a successfully parsed branch back into ctx.
func (ctx Context) commit(from Context) {
	*ctx.c = *from.c
}
