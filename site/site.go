package site

import (
	"regexp"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/wikitext/core"
)

// Config is the static site configuration a tokenizer run reads. Build one
// with DefaultConfig or Load; after that it must not be modified.
type Config struct {
	Namespaces       map[string]int `yaml:"namespaces"`
	ExtensionTags    []string       `yaml:"extension_tags"`
	AnnotationTags   []string       `yaml:"annotation_tags"`
	Protocols        []string       `yaml:"protocols"`
	LinkTrail        string         `yaml:"link_trail"`
	BehaviorSwitches []string       `yaml:"behavior_switches"`
	MagicLinks       MagicLinks     `yaml:"magic_links"`
	LangConversion   bool           `yaml:"lang_conversion"`

	extTags   map[string]bool
	annTags   map[string]bool
	switches  map[string]bool
	protocols *trie.Trie
	maxProto  int
	trailRx   *regexp.Regexp
}

// MagicLinks toggles the free-standing magic-link syntaxes.
type MagicLinks struct {
	ISBN bool `yaml:"isbn"`
	RFC  bool `yaml:"rfc"`
	PMID bool `yaml:"pmid"`
}

// DefaultConfig returns a configuration resembling a stock installation:
// the canonical namespace table, the common extension tags, the standard
// protocol list and an ASCII link trail.
func DefaultConfig() *Config {
	c := &Config{
		Namespaces: map[string]int{
			"media": -2, "special": -1, "talk": 1,
			"user": 2, "user talk": 3, "project": 4, "project talk": 5,
			"file": 6, "image": 6, "file talk": 7, "image talk": 7,
			"mediawiki": 8, "mediawiki talk": 9, "template": 10,
			"template talk": 11, "help": 12, "help talk": 13,
			"category": 14, "category talk": 15,
		},
		ExtensionTags: []string{
			"nowiki", "pre", "math", "ref", "references", "gallery",
			"source", "syntaxhighlight", "score", "timeline", "poem",
			"hiero", "charinsert", "imagemap", "inputbox", "categorytree",
		},
		AnnotationTags: []string{"translate", "tvar"},
		Protocols: []string{
			"//", "bitcoin:", "ftp://", "ftps://", "geo:", "git://",
			"gopher://", "http://", "https://", "irc://", "ircs://",
			"magnet:", "mailto:", "mms://", "news:", "nntp://", "redis://",
			"sftp://", "sip:", "sips:", "sms:", "ssh://", "svn://", "tel:",
			"telnet://", "urn:", "worldwind://", "xmpp:",
		},
		LinkTrail: "^[a-z]+",
		BehaviorSwitches: []string{
			"NOTOC", "FORCETOC", "TOC", "NOEDITSECTION", "NOGALLERY",
			"NEWSECTIONLINK", "NONEWSECTIONLINK", "HIDDENCAT", "INDEX",
			"NOINDEX", "STATICREDIRECT", "NOCONTENTCONVERT", "NOCC",
			"NOTITLECONVERT", "NOTC",
		},
		MagicLinks:     MagicLinks{ISBN: true, RFC: true, PMID: true},
		LangConversion: true,
	}
	if err := c.build(); err != nil {
		// the compiled-in defaults are known-good
		panic(err)
	}
	return c
}

// build derives the lookup structures from the declarative fields.
func (c *Config) build() error {
	c.extTags = nameSet(c.ExtensionTags)
	c.annTags = nameSet(c.AnnotationTags)
	c.switches = make(map[string]bool, len(c.BehaviorSwitches))
	for _, s := range c.BehaviorSwitches {
		c.switches[strings.ToUpper(s)] = true
	}
	c.protocols = trie.New()
	c.maxProto = 0
	for _, p := range c.Protocols {
		p = strings.ToLower(p)
		c.protocols.Add(p, len(p))
		if len(p) > c.maxProto {
			c.maxProto = len(p)
		}
	}
	if c.LinkTrail == "" {
		c.trailRx = nil
		return nil
	}
	rx, err := regexp.Compile(c.LinkTrail)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "invalid link-trail pattern %q", c.LinkTrail)
	}
	c.trailRx = rx
	return nil
}

func nameSet(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[strings.ToLower(n)] = true
	}
	return m
}

// IsExtensionTag reports whether name (any case) is a registered extension
// tag.
func (c *Config) IsExtensionTag(name string) bool {
	return c.extTags[strings.ToLower(name)]
}

// IsAnnotationTag reports whether name (any case) is a registered annotation
// tag.
func (c *Config) IsAnnotationTag(name string) bool {
	return c.annTags[strings.ToLower(name)]
}

// IsBehaviorSwitch reports whether name (upper-case, without underscores) is
// a known behavior switch.
func (c *Config) IsBehaviorSwitch(name string) bool {
	return c.switches[strings.ToUpper(name)]
}

// NamespaceID resolves a namespace prefix (any case, spaces or underscores)
// to its numeric id.
func (c *Config) NamespaceID(name string) (int, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", " ")
	id, ok := c.Namespaces[key]
	return id, ok
}
