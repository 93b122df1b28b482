package site

import (
	"os"

	"github.com/npillmayer/wikitext/core"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML site configuration from path. Fields not present in the
// file keep their DefaultConfig values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read site config %q", path)
	}
	return FromYAML(data)
}

// FromYAML decodes a YAML site configuration, layered over DefaultConfig.
func FromYAML(data []byte) (*Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "malformed site config")
	}
	if err := c.build(); err != nil {
		return nil, err
	}
	tracer().Infof("site config: %d protocols, %d extension tags",
		len(c.Protocols), len(c.ExtensionTags))
	return c, nil
}
