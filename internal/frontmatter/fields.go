package frontmatter

import "strings"

// Fields is the typed schema of tutorial index frontmatter.
//
// title is the only required field; layout and nav_order are optional and
// default to zero values when absent. Unknown keys are ignored rather than
// rejected so tutorial authors can carry extra metadata.
type Fields struct {
	Title    string `yaml:"title"`
	Layout   string `yaml:"layout"`
	NavOrder int    `yaml:"nav_order"`
}

// ParseFields parses raw YAML frontmatter (without --- delimiters) into the
// typed schema. Empty input yields zero Fields and no error.
func ParseFields(frontmatter []byte) (Fields, error) {
	var f Fields
	if len(frontmatter) == 0 {
		return f, nil
	}
	if err := unmarshalYAML(frontmatter, &f); err != nil {
		return Fields{}, err
	}
	f.Title = strings.TrimSpace(f.Title)
	f.Layout = strings.TrimSpace(f.Layout)
	return f, nil
}

// HasTitle reports whether a non-blank title was provided.
func (f Fields) HasTitle() bool {
	return f.Title != ""
}

// Validate returns a typed failure for schema violations.
// Currently only the required-title rule can fail.
func (f Fields) Validate() error {
	if !f.HasTitle() {
		return ErrMissingTitle
	}
	return nil
}
