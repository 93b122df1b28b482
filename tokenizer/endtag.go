package tokenizer

import "bytes"

// findEndTag locates the first close tag `</name>` matching name
// case-insensitively at or after pos, tolerating whitespace between the name
// and '>'. It returns the content end (the '<' of the close tag) and the
// position just past '>'. The body of an extension tag is never parsed as
// wikitext, so this is a pure substring search.
func findEndTag(src []byte, pos int, name string) (contentEnd, tagEnd int, ok bool) {
	for i := pos; i < len(src); i++ {
		j := bytes.IndexByte(src[i:], '<')
		if j < 0 {
			return 0, 0, false
		}
		i += j
		k := i + 1
		if k >= len(src) || src[k] != '/' {
			continue
		}
		k++
		if !foldPrefix(src[k:], name) {
			continue
		}
		k += len(name)
		m := k
		for m < len(src) && isSpaceByte(src[m]) {
			m++
		}
		if m < len(src) && src[m] == '>' {
			return i, m + 1, true
		}
	}
	return 0, 0, false
}

// foldPrefix reports whether s starts with name under ASCII case folding,
// with the match ending at a name boundary.
func foldPrefix(s []byte, name string) bool {
	if len(s) < len(name) {
		return false
	}
	for i := 0; i < len(name); i++ {
		b := s[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		n := name[i]
		if n >= 'A' && n <= 'Z' {
			n += 'a' - 'A'
		}
		if b != n {
			return false
		}
	}
	if len(s) > len(name) {
		if c := s[len(name)]; isTagNameByte(c) {
			return false
		}
	}
	return true
}

func isTagNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '-'
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
