package token

import (
	"fmt"
	"io"
)

// Dump writes an indented rendering of a token sequence to w, slicing literal
// content out of src. It is meant for debugging and the inspection CLI, not
// for round-tripping.
func Dump(w io.Writer, src []byte, seq []Token) {
	dump(w, src, seq, 0)
}

func dump(w io.Writer, src []byte, seq []Token, level int) {
	for _, t := range seq {
		indent(w, level)
		switch tok := t.(type) {
		case *Text:
			fmt.Fprintf(w, "Text %v %q\n", tok.Sp, tok.Sp.Slice(src))
		case *Generated:
			fmt.Fprintf(w, "Generated %v %q\n", tok.Sp, tok.Content)
		case *Entity:
			fmt.Fprintf(w, "Entity %v %q\n", tok.Sp, tok.Decoded)
		case *BehaviorSwitch:
			fmt.Fprintf(w, "BehaviorSwitch %v %s\n", tok.Sp, tok.Name)
		case *StartTag:
			fmt.Fprintf(w, "StartTag %v <%s> self-closing=%v\n", tok.Sp, tok.Name, tok.SelfClosing)
			dumpArgs(w, src, tok.Attrs, level+1)
		case *EndTag:
			fmt.Fprintf(w, "EndTag %v </%s>\n", tok.Sp, tok.Name)
		case *Extension:
			fmt.Fprintf(w, "Extension %v <%s>", tok.Sp, tok.Name)
			if tok.HasContent {
				fmt.Fprintf(w, " content=%q", tok.Content.Slice(src))
			}
			fmt.Fprintln(w)
			dumpArgs(w, src, tok.Attrs, level+1)
		case *StartAnnotation:
			fmt.Fprintf(w, "StartAnnotation %v <%s>\n", tok.Sp, tok.Name)
		case *EndAnnotation:
			fmt.Fprintf(w, "EndAnnotation %v </%s>\n", tok.Sp, tok.Name)
		case *Heading:
			fmt.Fprintf(w, "Heading %v level=%d\n", tok.Sp, tok.Level)
			dump(w, src, tok.Content, level+1)
		case *HorizontalRule:
			fmt.Fprintf(w, "HorizontalRule %v trailing=%v\n", tok.Sp, tok.Trailing)
		case *ListItem:
			fmt.Fprintf(w, "ListItem %v bullets=%q\n", tok.Sp, tok.Bullets.Slice(src))
			dump(w, src, tok.Content, level+1)
		case *TableStart:
			fmt.Fprintf(w, "TableStart %v\n", tok.Sp)
			dumpArgs(w, src, tok.Attrs, level+1)
		case *TableRow:
			fmt.Fprintf(w, "TableRow %v\n", tok.Sp)
			dumpArgs(w, src, tok.Attrs, level+1)
		case *TableCaption:
			fmt.Fprintf(w, "TableCaption %v\n", tok.Sp)
			dumpArgs(w, src, tok.Attrs, level+1)
		case *TableHeading:
			fmt.Fprintf(w, "TableHeading %v\n", tok.Sp)
			dumpArgs(w, src, tok.Attrs, level+1)
		case *TableData:
			fmt.Fprintf(w, "TableData %v\n", tok.Sp)
			dumpArgs(w, src, tok.Attrs, level+1)
		case *Template:
			fmt.Fprintf(w, "Template %v\n", tok.Sp)
			indent(w, level+1)
			fmt.Fprintln(w, "target:")
			dump(w, src, tok.Target, level+2)
			dumpArgs(w, src, tok.Args, level+1)
		case *Parameter:
			fmt.Fprintf(w, "Parameter %v\n", tok.Sp)
			indent(w, level+1)
			fmt.Fprintln(w, "name:")
			dump(w, src, tok.Name, level+2)
			dumpArgs(w, src, tok.Defaults, level+1)
		case *Link:
			fmt.Fprintf(w, "Link %v trail=%q\n", tok.Sp, tok.Trail.Slice(src))
			indent(w, level+1)
			fmt.Fprintln(w, "target:")
			dump(w, src, tok.Target, level+2)
			dumpArgs(w, src, tok.Content, level+1)
		case *ExternalLink:
			fmt.Fprintf(w, "ExternalLink %v target=%q\n", tok.Sp, tok.Target.Slice(src))
			dump(w, src, tok.Content, level+1)
		case *Autolink:
			fmt.Fprintf(w, "Autolink %v target=%q\n", tok.Sp, tok.Target.Slice(src))
			dump(w, src, tok.Content, level+1)
		case *LangVariant:
			fmt.Fprintf(w, "LangVariant %v flags=%v raw=%v\n", tok.Sp, tok.Flags, tok.Raw)
			for _, v := range tok.Variants {
				indent(w, level+1)
				if v.From != "" {
					fmt.Fprintf(w, "variant %s=>%s:\n", v.From, v.Lang)
				} else {
					fmt.Fprintf(w, "variant %s:\n", v.Lang)
				}
				dump(w, src, v.Content, level+2)
			}
		case *TextStyle:
			fmt.Fprintf(w, "TextStyle %v %v\n", tok.Sp, tok.Style)
		default:
			fmt.Fprintf(w, "%v %v\n", t.Kind(), t.Span())
		}
	}
}

func dumpArgs(w io.Writer, src []byte, args []Argument, level int) {
	for i, a := range args {
		indent(w, level)
		fmt.Fprintf(w, "arg[%d] %v eq=%d term=%d\n", i, a.Sp, a.Eq, a.Term)
		dump(w, src, a.Tokens, level+1)
	}
}

func indent(w io.Writer, level int) {
	for i := 0; i < level; i++ {
		io.WriteString(w, "  ")
	}
}
