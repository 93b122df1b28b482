package token

// Gaps returns the byte ranges of src[0:len] not covered by the top-level
// spans of seq. A fully covering token sequence yields no gaps; inclusion
// control and table fostering are the only legitimate sources of gaps.
func Gaps(srcLen int, seq []Token) []Span {
	var gaps []Span
	cursor := 0
	for _, t := range seq {
		sp := t.Span()
		if sp.IsNull() {
			continue
		}
		if sp.Start > cursor {
			gaps = append(gaps, NewSpan(cursor, sp.Start))
		}
		if sp.End > cursor {
			cursor = sp.End
		}
	}
	if cursor < srcLen {
		gaps = append(gaps, NewSpan(cursor, srcLen))
	}
	return gaps
}
