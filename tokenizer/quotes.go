package tokenizer

import (
	"github.com/npillmayer/wikitext/token"
)

// Balance resolves ambiguous bold/italic apostrophe runs. Every line, and
// every nested content region (heading, list item, link description,
// external-link label, language variant), is balanced on its own: when both
// the bold and the italic count of a line are odd, exactly one bold run is
// demoted by peeling its first apostrophe off as text and reading the rest
// as italic. Balancing already-balanced output changes nothing.
func Balance(src []byte, toks []token.Token) []token.Token {
	return balanceRegion(src, toks)
}

// balanceRegion recurses into nested content, then balances each line of the
// region independently.
func balanceRegion(src []byte, toks []token.Token) []token.Token {
	for _, t := range toks {
		balanceNested(src, t)
	}
	out := make([]token.Token, 0, len(toks))
	start := 0
	for i, t := range toks {
		if t.Kind() == token.KNewLine {
			out = append(out, balanceLine(src, toks[start:i])...)
			out = append(out, t)
			start = i + 1
		}
	}
	return append(out, balanceLine(src, toks[start:])...)
}

func balanceNested(src []byte, t token.Token) {
	switch n := t.(type) {
	case *token.Heading:
		n.Content = balanceRegion(src, n.Content)
	case *token.ListItem:
		n.Content = balanceRegion(src, n.Content)
	case *token.Link:
		for i := range n.Content {
			balanceArgument(src, &n.Content[i])
		}
	case *token.ExternalLink:
		n.Content = balanceRegion(src, n.Content)
	case *token.Autolink:
		n.Content = balanceRegion(src, n.Content)
	case *token.LangVariant:
		for i := range n.Variants {
			n.Variants[i].Content = balanceRegion(src, n.Variants[i].Content)
		}
	}
}

// balanceArgument balances an argument's name and value sides separately so
// the delimiter offset stays valid.
func balanceArgument(src []byte, arg *token.Argument) {
	if arg.Eq < 0 {
		arg.Tokens = balanceRegion(src, arg.Tokens)
		return
	}
	name := balanceRegion(src, arg.Tokens[:arg.Eq])
	value := balanceRegion(src, arg.Tokens[arg.Eq:])
	arg.Tokens = append(name, value...)
	arg.Eq = len(name)
}

// balanceLine applies the odd-odd demotion rule to one line.
func balanceLine(src []byte, seg []token.Token) []token.Token {
	bold, italic := 0, 0
	for _, t := range seg {
		if ts, isStyle := t.(*token.TextStyle); isStyle {
			switch ts.Style {
			case token.Bold:
				bold++
			case token.Italic:
				italic++
			}
		}
	}
	if bold%2 == 0 || italic%2 == 0 {
		return seg
	}
	victim := pickVictim(seg)
	if victim < 0 {
		return seg
	}
	out := make([]token.Token, 0, len(seg)+1)
	for i, t := range seg {
		if i != victim {
			out = append(out, t)
			continue
		}
		sp := t.Span()
		out = append(out,
			&token.Text{Sp: token.NewSpan(sp.Start, sp.Start+1)},
			&token.TextStyle{Sp: token.NewSpan(sp.Start+1, sp.End), Style: token.Italic})
	}
	return out
}

// pickVictim selects the bold run to demote: first orphan, else first plain,
// else first space-preceded.
func pickVictim(seg []token.Token) int {
	orphan, plain, space := -1, -1, -1
	for i, t := range seg {
		ts, isStyle := t.(*token.TextStyle)
		if !isStyle || ts.Style != token.Bold {
			continue
		}
		switch ts.Class {
		case token.BoldOrphan:
			if orphan < 0 {
				orphan = i
			}
		case token.BoldPlain:
			if plain < 0 {
				plain = i
			}
		case token.BoldSpace:
			if space < 0 {
				space = i
			}
		}
	}
	switch {
	case orphan >= 0:
		return orphan
	case plain >= 0:
		return plain
	}
	return space
}
