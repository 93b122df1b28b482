package token

import "fmt"

// Span is a half-open byte range [Start,End) into the original input buffer.
// The zero value is not a valid span; use Null for "no span yet".
type Span struct {
	Start int
	End   int
}

// Null is the unset span. Cover treats it as the neutral element.
var Null = Span{-1, -1}

// NewSpan returns the span [from,to).
func NewSpan(from, to int) Span {
	return Span{Start: from, End: to}
}

// IsNull reports whether s is unset.
func (s Span) IsNull() bool {
	return s.Start < 0
}

// Len returns the byte length of the span, 0 for Null.
func (s Span) Len() int {
	if s.IsNull() || s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Cover returns the smallest span containing both s and other.
// Spans compose by taking the min start / max end of their operands.
func (s Span) Cover(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	r := s
	if other.Start < r.Start {
		r.Start = other.Start
	}
	if other.End > r.End {
		r.End = other.End
	}
	return r
}

// Slice returns the bytes of the input buffer covered by s.
// Out-of-bounds spans are clamped.
func (s Span) Slice(src []byte) []byte {
	if s.IsNull() {
		return nil
	}
	from, to := s.Start, s.End
	if from > len(src) {
		from = len(src)
	}
	if to > len(src) {
		to = len(src)
	}
	if to < from {
		to = from
	}
	return src[from:to]
}

func (s Span) String() string {
	if s.IsNull() {
		return "[-)"
	}
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// CoverAll returns the smallest span containing the spans of all tokens in seq.
func CoverAll(seq []Token) Span {
	r := Null
	for _, t := range seq {
		r = r.Cover(t.Span())
	}
	return r
}
