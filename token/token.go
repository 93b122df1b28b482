package token

// Kind discriminates the variants of the Token union.
type Kind int8

//go:generate stringer -type=Kind
const (
	KText Kind = iota
	KGenerated
	KNewLine
	KComment
	KEntity
	KStripMarker
	KBehaviorSwitch
	KStartTag
	KEndTag
	KExtension
	KStartAnnotation
	KEndAnnotation
	KHeading
	KHorizontalRule
	KListItem
	KTableStart
	KTableRow
	KTableCaption
	KTableHeading
	KTableData
	KTableEnd
	KTemplate
	KParameter
	KLink
	KExternalLink
	KAutolink
	KLangVariant
	KTextStyle
)

var kindNames = [...]string{
	"Text", "Generated", "NewLine", "Comment", "Entity", "StripMarker",
	"BehaviorSwitch", "StartTag", "EndTag", "Extension", "StartAnnotation",
	"EndAnnotation", "Heading", "HorizontalRule", "ListItem", "TableStart",
	"TableRow", "TableCaption", "TableHeading", "TableData", "TableEnd",
	"Template", "Parameter", "Link", "ExternalLink", "Autolink",
	"LangVariant", "TextStyle",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Token is the closed union of wikitext token variants. All implementations
// live in this package; clients match exhaustively over Kind or via type
// switch.
type Token interface {
	Kind() Kind
	Span() Span
	sealed()
}

// Text is a run of literal characters, sliced from the input via its span.
type Text struct {
	Sp Span
}

// Generated is synthesized literal text that has no verbatim counterpart in
// the input buffer. Its span points at the bytes it was derived from.
type Generated struct {
	Sp      Span
	Content string
}

// NewLine is a line break at block level.
type NewLine struct {
	Sp Span
}

// Comment is an HTML comment, span covering `<!--` through `-->` (or through
// end of input when unterminated).
type Comment struct {
	Sp Span
}

// Entity is a recognized named or numeric character reference.
type Entity struct {
	Sp      Span
	Decoded string
}

// StripMarker is an opaque placeholder left behind by a previous expansion
// stage; only recognized when tokenizing already-expanded text.
type StripMarker struct {
	Sp Span
}

// BehaviorSwitch is a `__WORD__` magic word known to the site configuration.
type BehaviorSwitch struct {
	Sp   Span
	Name string
}

// StartTag is an opening (or self-closing) HTML-ish tag with parsed
// attributes.
type StartTag struct {
	Sp          Span
	Name        string
	Attrs       []Argument
	SelfClosing bool
}

// EndTag is a closing HTML-ish tag.
type EndTag struct {
	Sp   Span
	Name string
}

// Extension is an extension tag whose body, if any, is captured verbatim as a
// raw span and never parsed as wikitext.
type Extension struct {
	Sp         Span
	Name       string
	Attrs      []Argument
	Content    Span
	HasContent bool
}

// StartAnnotation opens an annotation range; its body is parsed as ordinary
// wikitext.
type StartAnnotation struct {
	Sp    Span
	Name  string
	Attrs []Argument
}

// EndAnnotation closes an annotation range.
type EndAnnotation struct {
	Sp   Span
	Name string
}

// Heading is a `=…=` section heading, level 1–6.
type Heading struct {
	Sp      Span
	Level   int
	Content []Token
}

// HorizontalRule is a `----` rule. Trailing reports whether literal content
// followed the dashes on the same line.
type HorizontalRule struct {
	Sp       Span
	Trailing bool
}

// ListItem is one bullet line; Bullets spans the `*#:;` prefix.
type ListItem struct {
	Sp      Span
	Bullets Span
	Content []Token
}

// TableStart opens a `{|` table.
type TableStart struct {
	Sp    Span
	Attrs []Argument
}

// TableRow is a `|-` row separator.
type TableRow struct {
	Sp    Span
	Attrs []Argument
}

// TableCaption is a `|+` caption cell. Its content follows flat in the token
// stream.
type TableCaption struct {
	Sp    Span
	Attrs []Argument
}

// TableHeading is a `!` heading cell. Its content follows flat in the token
// stream.
type TableHeading struct {
	Sp    Span
	Attrs []Argument
}

// TableData is a `|` data cell. Its content follows flat in the token stream.
type TableData struct {
	Sp    Span
	Attrs []Argument
}

// TableEnd closes a `|}` table.
type TableEnd struct {
	Sp Span
}

// Template is a `{{…}}` transclusion with an ordered argument list.
type Template struct {
	Sp     Span
	Target []Token
	Args   []Argument
}

// Parameter is a `{{{…}}}` template parameter with optional defaults.
type Parameter struct {
	Sp       Span
	Name     []Token
	Defaults []Argument
}

// Link is a `[[…]]` wikilink. Content holds the pipe-separated arguments;
// Trail spans letters following the close brackets that merge into the link.
type Link struct {
	Sp      Span
	Target  []Token
	Content []Argument
	Trail   Span
}

// ExternalLink is a `[proto://… label]` bracketed external link.
type ExternalLink struct {
	Sp      Span
	Target  Span
	Content []Token
}

// Autolink is a bare URL (or magic link) recognized in running text.
type Autolink struct {
	Sp      Span
	Target  Span
	Content []Token
}

// Variant is one branch of a language-conversion block.
type Variant struct {
	Lang    string
	From    string
	TwoWay  bool
	Content []Token
}

// LangVariant is a `-{…}-` language-conversion block.
type LangVariant struct {
	Sp       Span
	Flags    []string
	Variants []Variant
	Raw      bool
}

// Style classifies a TextStyle token.
type Style int8

const (
	Italic Style = iota
	Bold
	BoldItalic
)

func (s Style) String() string {
	switch s {
	case Italic:
		return "italic"
	case Bold:
		return "bold"
	case BoldItalic:
		return "bold-italic"
	}
	return "?"
}

// BoldClass records what preceded a Bold apostrophe run; the quote balancer
// uses it to pick a demotion victim.
type BoldClass int8

const (
	BoldPlain  BoldClass = iota // preceded by a non-space character
	BoldSpace                   // preceded by a space
	BoldOrphan                  // single non-space char between space and run
)

// TextStyle is an apostrophe run resolved to italic/bold markup. Bold runs
// carry a BoldClass.
type TextStyle struct {
	Sp    Span
	Style Style
	Class BoldClass
}

func (t *Text) Kind() Kind            { return KText }
func (t *Generated) Kind() Kind       { return KGenerated }
func (t *NewLine) Kind() Kind         { return KNewLine }
func (t *Comment) Kind() Kind         { return KComment }
func (t *Entity) Kind() Kind          { return KEntity }
func (t *StripMarker) Kind() Kind     { return KStripMarker }
func (t *BehaviorSwitch) Kind() Kind  { return KBehaviorSwitch }
func (t *StartTag) Kind() Kind        { return KStartTag }
func (t *EndTag) Kind() Kind          { return KEndTag }
func (t *Extension) Kind() Kind       { return KExtension }
func (t *StartAnnotation) Kind() Kind { return KStartAnnotation }
func (t *EndAnnotation) Kind() Kind   { return KEndAnnotation }
func (t *Heading) Kind() Kind         { return KHeading }
func (t *HorizontalRule) Kind() Kind  { return KHorizontalRule }
func (t *ListItem) Kind() Kind        { return KListItem }
func (t *TableStart) Kind() Kind      { return KTableStart }
func (t *TableRow) Kind() Kind        { return KTableRow }
func (t *TableCaption) Kind() Kind    { return KTableCaption }
func (t *TableHeading) Kind() Kind    { return KTableHeading }
func (t *TableData) Kind() Kind       { return KTableData }
func (t *TableEnd) Kind() Kind        { return KTableEnd }
func (t *Template) Kind() Kind        { return KTemplate }
func (t *Parameter) Kind() Kind       { return KParameter }
func (t *Link) Kind() Kind            { return KLink }
func (t *ExternalLink) Kind() Kind    { return KExternalLink }
func (t *Autolink) Kind() Kind        { return KAutolink }
func (t *LangVariant) Kind() Kind     { return KLangVariant }
func (t *TextStyle) Kind() Kind       { return KTextStyle }

func (t *Text) Span() Span            { return t.Sp }
func (t *Generated) Span() Span       { return t.Sp }
func (t *NewLine) Span() Span         { return t.Sp }
func (t *Comment) Span() Span         { return t.Sp }
func (t *Entity) Span() Span          { return t.Sp }
func (t *StripMarker) Span() Span     { return t.Sp }
func (t *BehaviorSwitch) Span() Span  { return t.Sp }
func (t *StartTag) Span() Span        { return t.Sp }
func (t *EndTag) Span() Span          { return t.Sp }
func (t *Extension) Span() Span       { return t.Sp }
func (t *StartAnnotation) Span() Span { return t.Sp }
func (t *EndAnnotation) Span() Span   { return t.Sp }
func (t *Heading) Span() Span         { return t.Sp }
func (t *HorizontalRule) Span() Span  { return t.Sp }
func (t *ListItem) Span() Span        { return t.Sp }
func (t *TableStart) Span() Span      { return t.Sp }
func (t *TableRow) Span() Span        { return t.Sp }
func (t *TableCaption) Span() Span    { return t.Sp }
func (t *TableHeading) Span() Span    { return t.Sp }
func (t *TableData) Span() Span       { return t.Sp }
func (t *TableEnd) Span() Span        { return t.Sp }
func (t *Template) Span() Span        { return t.Sp }
func (t *Parameter) Span() Span       { return t.Sp }
func (t *Link) Span() Span            { return t.Sp }
func (t *ExternalLink) Span() Span    { return t.Sp }
func (t *Autolink) Span() Span        { return t.Sp }
func (t *LangVariant) Span() Span     { return t.Sp }
func (t *TextStyle) Span() Span       { return t.Sp }

func (t *Text) sealed()            {}
func (t *Generated) sealed()       {}
func (t *NewLine) sealed()         {}
func (t *Comment) sealed()         {}
func (t *Entity) sealed()          {}
func (t *StripMarker) sealed()     {}
func (t *BehaviorSwitch) sealed()  {}
func (t *StartTag) sealed()        {}
func (t *EndTag) sealed()          {}
func (t *Extension) sealed()       {}
func (t *StartAnnotation) sealed() {}
func (t *EndAnnotation) sealed()   {}
func (t *Heading) sealed()         {}
func (t *HorizontalRule) sealed()  {}
func (t *ListItem) sealed()        {}
func (t *TableStart) sealed()      {}
func (t *TableRow) sealed()        {}
func (t *TableCaption) sealed()    {}
func (t *TableHeading) sealed()    {}
func (t *TableData) sealed()       {}
func (t *TableEnd) sealed()        {}
func (t *Template) sealed()        {}
func (t *Parameter) sealed()       {}
func (t *Link) sealed()            {}
func (t *ExternalLink) sealed()    {}
func (t *Autolink) sealed()        {}
func (t *LangVariant) sealed()     {}
func (t *TextStyle) sealed()       {}

// IsTableToken reports whether t is part of the table token family.
func IsTableToken(t Token) bool {
	switch t.Kind() {
	case KTableStart, KTableRow, KTableCaption, KTableHeading, KTableData, KTableEnd:
		return true
	}
	return false
}
