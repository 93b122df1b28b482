package site

// MatchProtocol matches the protocol list against src at pos and returns the
// byte length of the longest matching protocol, or 0. Matching is
// case-insensitive; the protocol trie stores lower-cased entries.
func (c *Config) MatchProtocol(src []byte, pos int) int {
	if c.protocols == nil {
		return 0
	}
	limit := pos + c.maxProto
	if limit > len(src) {
		limit = len(src)
	}
	var buf [32]byte
	key := buf[:0]
	best := 0
	for i := pos; i < limit; i++ {
		b := src[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		key = append(key, b)
		if !c.protocols.HasKeysWithPrefix(string(key)) {
			break
		}
		if node, ok := c.protocols.Find(string(key)); ok && node != nil {
			best = len(key)
		}
	}
	return best
}
