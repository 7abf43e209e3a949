package github

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Repository identifies a remote GitHub repository
type Repository struct {
	Owner string
	Name  string
}

// ParseRepository parses an "owner/name" reference. Exactly one slash is allowed
// and neither side may be empty.
func ParseRepository(s string) (Repository, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, &ParseError{Input: s}
	}
	return Repository{Owner: parts[0], Name: parts[1]}, nil
}

// String returns the repository in owner/name form
func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// Label is the fully resolved, remote-facing form of one label
type Label struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// LabelEntry is a single suffix/description pair of a category
type LabelEntry struct {
	Suffix      string
	Description string
}

// LabelSet is an ordered mapping of label suffix to description. YAML decoding
// keeps the order in which the keys appear in the document.
type LabelSet []LabelEntry

// UnmarshalYAML decodes a YAML mapping while preserving key order
func (s *LabelSet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: labels must be a mapping of suffix to description", node.Line)
	}

	seen := make(map[string]bool, len(node.Content)/2)
	entries := make(LabelSet, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var suffix, description string
		if err := key.Decode(&suffix); err != nil {
			return fmt.Errorf("line %d: invalid label suffix: %w", key.Line, err)
		}
		if err := value.Decode(&description); err != nil {
			return fmt.Errorf("line %d: invalid description for label %q: %w", value.Line, suffix, err)
		}
		if seen[suffix] {
			return fmt.Errorf("line %d: duplicate label %q", key.Line, suffix)
		}
		seen[suffix] = true

		entries = append(entries, LabelEntry{Suffix: suffix, Description: description})
	}

	*s = entries
	return nil
}

// MarshalYAML encodes the set back into an ordered mapping
func (s LabelSet) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, entry := range s {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Suffix},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Description},
		)
	}
	return node, nil
}

// Category is a group of labels sharing a name prefix and a color
type Category struct {
	Prefix string   `yaml:"prefix"`
	Color  string   `yaml:"color"`
	Labels LabelSet `yaml:"labels"`
}

// Label resolves one entry of the category into its remote-facing label
func (c Category) Label(entry LabelEntry) Label {
	return Label{
		Name:        c.Prefix + "-" + entry.Suffix,
		Color:       c.Color,
		Description: entry.Description,
	}
}

// ResolvedLabels returns every label of the category in iteration order
func (c Category) ResolvedLabels() []Label {
	labels := make([]Label, 0, len(c.Labels))
	for _, entry := range c.Labels {
		labels = append(labels, c.Label(entry))
	}
	return labels
}

// Configuration is the top-level label document
type Configuration struct {
	Categories []Category `yaml:"categories"`
}

// LabelCount returns the number of labels across all categories
func (c *Configuration) LabelCount() int {
	count := 0
	for _, category := range c.Categories {
		count += len(category.Labels)
	}
	return count
}
