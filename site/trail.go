package site

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
)

var setupGraphemes sync.Once

// MatchTrail applies the link-trail pattern at src[pos:] and returns the byte
// length of the captured trail. The raw regexp match is trimmed back to a
// grapheme cluster boundary so a trail never splits a user-perceived
// character.
func (c *Config) MatchTrail(src []byte, pos int) int {
	if c.trailRx == nil || pos >= len(src) {
		return 0
	}
	// bound the candidate region to the current line
	end := pos
	for end < len(src) && src[end] != '\n' && src[end] != '\r' {
		end++
	}
	m := c.trailRx.Find(src[pos:end])
	if len(m) == 0 {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(string(src[pos:end]))
	trail := 0
	for i := 0; i < gstr.Len(); i++ {
		next := trail + len(gstr.Nth(i))
		if next > len(m) {
			break
		}
		trail = next
	}
	return trail
}
