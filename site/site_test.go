package site

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigLookups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.site")
	defer teardown()
	//
	c := DefaultConfig()
	assert.True(t, c.IsExtensionTag("nowiki"))
	assert.True(t, c.IsExtensionTag("NoWiki"))
	assert.False(t, c.IsExtensionTag("bogus"))
	assert.True(t, c.IsAnnotationTag("translate"))
	assert.True(t, c.IsBehaviorSwitch("NOTOC"))
	assert.False(t, c.IsBehaviorSwitch("BOGUS"))
}

func TestNamespaceID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.site")
	defer teardown()
	//
	c := DefaultConfig()
	id, ok := c.NamespaceID("Template")
	assert.True(t, ok)
	assert.Equal(t, 10, id)
	id, ok = c.NamespaceID("user_talk")
	assert.True(t, ok)
	assert.Equal(t, 3, id)
	_, ok = c.NamespaceID("nonesuch")
	assert.False(t, ok)
}

func TestMatchProtocol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.site")
	defer teardown()
	//
	c := DefaultConfig()
	assert.Equal(t, 8, c.MatchProtocol([]byte("https://example.org"), 0))
	assert.Equal(t, 7, c.MatchProtocol([]byte("HTTP://X"), 0))
	assert.Equal(t, 0, c.MatchProtocol([]byte("nothing here"), 0))
	// the longest protocol wins
	assert.Equal(t, 7, c.MatchProtocol([]byte("ftps://h"), 0))
	assert.Equal(t, 6, c.MatchProtocol([]byte("ftp://h"), 0))
}

func TestMatchTrail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.site")
	defer teardown()
	//
	c := DefaultConfig()
	src := []byte("xyz and more")
	assert.Equal(t, 3, c.MatchTrail(src, 0))
	assert.Equal(t, 0, c.MatchTrail([]byte("Xyz"), 0), "the default trail is lower-case only")
	assert.Equal(t, 0, c.MatchTrail([]byte("\nabc"), 0))
}

func TestFromYAMLLayering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.site")
	defer teardown()
	//
	cfg, err := FromYAML([]byte("extension_tags: [foo]\nlang_conversion: false\n"))
	if assert.NoError(t, err) {
		assert.True(t, cfg.IsExtensionTag("foo"))
		assert.False(t, cfg.IsExtensionTag("nowiki"), "the file replaces the tag list")
		assert.False(t, cfg.LangConversion)
		assert.True(t, cfg.IsBehaviorSwitch("NOTOC"), "untouched fields keep their defaults")
	}
}

func TestFromYAMLRejectsBadTrail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wikitext.site")
	defer teardown()
	//
	_, err := FromYAML([]byte("link_trail: '['\n"))
	assert.Error(t, err)
}
