package normalize

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlMapping parses frontmatter text into a mapping. Non-mapping YAML
// (a bare scalar or sequence) is rejected; frontmatter is key/value by
// convention and anything else was misdetected.
func yamlMapping(text string) (any, error) {
	var m map[string]any
	if err := yaml.Unmarshal([]byte(text), &m); err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("frontmatter is not a mapping")
	}
	return m, nil
}
