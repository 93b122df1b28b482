package token

// Argument is one ordered entry inside a template, parameter, link or
// attribute list. Its content is a token sequence; Eq and Term are offsets
// into that sequence marking the name/value delimiter and an explicit
// terminator, so the original text (key vs. value vs. punctuation) can be
// reconstructed exactly without storing it separately. An offset of -1 means
// "absent".
type Argument struct {
	Sp     Span
	Tokens []Token
	Eq     int
	Term   int
}

// NewArgument returns an argument over toks with no delimiter offsets set.
func NewArgument(toks []Token) Argument {
	return Argument{
		Sp:     CoverAll(toks),
		Tokens: toks,
		Eq:     -1,
		Term:   -1,
	}
}

// Name returns the tokens before the name/value delimiter, or nil if the
// argument is positional.
func (a Argument) Name() []Token {
	if a.Eq < 0 {
		return nil
	}
	return a.Tokens[:a.Eq]
}

// Value returns the tokens after the name/value delimiter, or all tokens for
// a positional argument.
func (a Argument) Value() []Token {
	if a.Eq < 0 {
		return a.Tokens
	}
	if a.Eq > len(a.Tokens) {
		return nil
	}
	return a.Tokens[a.Eq:]
}
