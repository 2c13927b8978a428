package frontmatter

import "gopkg.in/yaml.v3"

// unmarshalYAML is the single YAML entry point for this package, so the
// decoder configuration cannot drift between callers.
func unmarshalYAML(data []byte, out any) error {
	return yaml.Unmarshal(data, out)
}
